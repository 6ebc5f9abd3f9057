package memengine

import (
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// Option defines a functional option for configuring BookStore.
type Option func(*BookStore) error

// WithLogger sets the logger for the BookStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: lookups with result sizes (development use)
// Info level: mutations with book ids and collection sizes (production-safe).
func WithLogger(logger catalog.Logger) Option {
	return func(bs *BookStore) error {
		bs.obs.Logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(bs *BookStore) error {
		bs.obs.ContextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the BookStore.
func WithMetrics(collector catalog.MetricsCollector) Option {
	return func(bs *BookStore) error {
		bs.obs.MetricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the BookStore.
func WithTracing(collector catalog.TracingCollector) Option {
	return func(bs *BookStore) error {
		bs.obs.TracingCollector = collector
		return nil
	}
}

// WithObservability sets all observability dependencies at once.
func WithObservability(obs catalog.Observability) Option {
	return func(bs *BookStore) error {
		bs.obs = obs
		return nil
	}
}

// WithIDStrategy sets how ids are assigned to created books. The default is SizeBasedIDs.
func WithIDStrategy(strategy IDStrategy) Option {
	return func(bs *BookStore) error {
		if !strategy.valid() {
			return catalog.ErrUnknownIDStrategy
		}

		bs.idStrategy = strategy

		return nil
	}
}
