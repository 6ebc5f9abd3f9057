package resolver

import (
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// Option defines a functional option for configuring ResolverSet.
type Option func(*ResolverSet) error

// WithLogger sets the logger for the ResolverSet.
func WithLogger(logger catalog.Logger) Option {
	return func(r *ResolverSet) error {
		r.obs.Logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(r *ResolverSet) error {
		r.obs.ContextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the ResolverSet.
func WithMetrics(collector catalog.MetricsCollector) Option {
	return func(r *ResolverSet) error {
		r.obs.MetricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the ResolverSet.
func WithTracing(collector catalog.TracingCollector) Option {
	return func(r *ResolverSet) error {
		r.obs.TracingCollector = collector
		return nil
	}
}

// WithObservability sets all observability dependencies at once.
func WithObservability(obs catalog.Observability) Option {
	return func(r *ResolverSet) error {
		r.obs = obs
		return nil
	}
}

// WithClock replaces time.Now as the source of event timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *ResolverSet) error {
		if now == nil {
			return ErrNilClock
		}

		r.now = now

		return nil
	}
}
