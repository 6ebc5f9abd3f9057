package main

import (
	"errors"
	"flag"
	"log/slog"
	"strings"

	"github.com/AntonStoeckl/bookcatalog-go/app/shell/config"
)

const (
	serviceName    = "bookcatalog"
	serviceVersion = "1.0.0"

	defaultAddr = ":4000"
)

// ErrUnknownLogLevel is returned for a -log-level value slog does not know.
var ErrUnknownLogLevel = errors.New("unknown log level")

// Config holds the command line configuration of the server.
type Config struct {
	Addr                 string
	SeedFile             string
	QueueCapacity        int
	MonotonicIDs         bool
	ObservabilityEnabled bool
	OTLPEndpoint         string
	LogLevel             string
	LogFormat            string
}

func parseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", defaultAddr, "HTTP listen address")
	flags.StringVar(&cfg.SeedFile, "seed-file", "", "JSON seed file, the built-in seed is used when empty")
	flags.IntVar(&cfg.QueueCapacity, "queue-capacity", 0, "Per subscriber event queue capacity, 0 means unbounded")
	flags.BoolVar(&cfg.MonotonicIDs, "monotonic-ids", false, "Never reuse book ids after deletions")
	flags.BoolVar(&cfg.ObservabilityEnabled, "observability-enabled", false, "Enable OpenTelemetry observability")
	flags.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", config.DefaultOTLPEndpoint, "OpenTelemetry Collector gRPC endpoint")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, errors.Join(ErrUnknownLogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(stdout, opts)), nil
	}

	return slog.New(slog.NewTextHandler(stdout, opts)), nil
}

func (c Config) loadSeed() (config.Seed, error) {
	if c.SeedFile == "" {
		return config.DefaultSeed(), nil
	}

	return config.LoadSeedFile(c.SeedFile)
}
