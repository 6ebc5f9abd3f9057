package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/bookcatalog-go/app/graphqlapi"
	"github.com/AntonStoeckl/bookcatalog-go/app/resolver"
	"github.com/AntonStoeckl/bookcatalog-go/app/shell/config"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/eventbus"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/memengine"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var stdout = os.Stdout

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "catalogserver: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := cfg.newLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, shutdownObservability, err := newComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return serveAndShutdown(ctx, cfg, logger, components, shutdownObservability)
}

// serveAndShutdown serves until ctx is done or serving fails.
// The observability providers are shut down on every path.
func serveAndShutdown(
	ctx context.Context,
	cfg Config,
	logger catalog.Logger,
	components componentObservability,
	shutdownObservability func(context.Context) error,
) error {

	serveErr := serve(ctx, cfg, logger, components)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(serveErr, shutdownObservability(shutdownCtx))
}

func serve(ctx context.Context, cfg Config, logger catalog.Logger, components componentObservability) error {
	seed, err := cfg.loadSeed()
	if err != nil {
		return err
	}

	handler, closeBus, err := wire(seed, cfg, components)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	logger.Info("server ready",
		"url", "http://"+listener.Addr().String()+graphqlapi.QueryPath,
		"subscriptions", "http://"+listener.Addr().String()+graphqlapi.SubscriptionPath,
		"observability_enabled", cfg.ObservabilityEnabled)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if serveErr := server.Serve(listener); !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Ends open subscription streams before the server waits for their handlers.
		closeBus(shutdownCtx)

		return server.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")

	return nil
}

// componentObservability holds the observability of every component of the process.
type componentObservability struct {
	store     catalog.Observability
	bus       catalog.Observability
	resolvers catalog.Observability
	api       catalog.Observability
}

func newComponents(
	ctx context.Context,
	cfg Config,
	logger *slog.Logger,
) (componentObservability, func(context.Context) error, error) {

	if !cfg.ObservabilityEnabled {
		plain := catalog.Observability{Logger: logger}

		return componentObservability{store: plain, bus: plain, resolvers: plain, api: plain},
			func(context.Context) error { return nil },
			nil
	}

	providers, err := config.NewObservabilityProviders(ctx, cfg.OTLPEndpoint, serviceName, serviceVersion)
	if err != nil {
		return componentObservability{}, nil, err
	}

	// Component logs stay visible on stdout, no LoggerProvider exports them.
	providers.LogHandler = logger.Handler()

	return componentObservability{
		store:     providers.Observability("bookstore"),
		bus:       providers.Observability("eventbus"),
		resolvers: providers.Observability("resolver"),
		api:       providers.Observability("graphqlapi"),
	}, providers.Shutdown, nil
}

func wire(seed config.Seed, cfg Config, obs componentObservability) (http.Handler, func(context.Context), error) {
	storeOptions := []memengine.Option{memengine.WithObservability(obs.store)}
	if cfg.MonotonicIDs {
		storeOptions = append(storeOptions, memengine.WithIDStrategy(memengine.MonotonicIDs))
	}

	store, err := seed.NewBookStore(storeOptions...)
	if err != nil {
		return nil, nil, err
	}

	bus, err := eventbus.NewBus(
		eventbus.WithObservability(obs.bus),
		eventbus.WithQueueCapacity(cfg.QueueCapacity),
	)
	if err != nil {
		return nil, nil, err
	}

	resolvers, err := resolver.NewResolverSet(store, bus, resolver.WithObservability(obs.resolvers))
	if err != nil {
		return nil, nil, err
	}

	schema, err := graphqlapi.NewSchema(resolvers)
	if err != nil {
		return nil, nil, err
	}

	return graphqlapi.NewHandler(schema, obs.api), bus.Close, nil
}
