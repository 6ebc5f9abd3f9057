package eventbus

import (
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// Option defines a functional option for configuring Bus.
type Option func(*Bus) error

// WithLogger sets the logger for the Bus.
//
// Debug level: publishes with delivery counts
// Info level: subscribe and unsubscribe
// Warn level: events dropped for full subscriber queues.
func WithLogger(logger catalog.Logger) Option {
	return func(b *Bus) error {
		b.obs.Logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(b *Bus) error {
		b.obs.ContextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Bus.
func WithMetrics(collector catalog.MetricsCollector) Option {
	return func(b *Bus) error {
		b.obs.MetricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Bus.
func WithTracing(collector catalog.TracingCollector) Option {
	return func(b *Bus) error {
		b.obs.TracingCollector = collector
		return nil
	}
}

// WithObservability sets all observability dependencies at once.
func WithObservability(obs catalog.Observability) Option {
	return func(b *Bus) error {
		b.obs = obs
		return nil
	}
}

// WithQueueCapacity bounds every subscriber queue to capacity events. Zero means unbounded.
func WithQueueCapacity(capacity int) Option {
	return func(b *Bus) error {
		if capacity < 0 {
			return catalog.ErrNegativeQueueCapacity
		}

		b.queueCapacity = capacity

		return nil
	}
}
