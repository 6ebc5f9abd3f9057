package catalog

import (
	"context"
	"math"
	"time"
)

// The helpers below route to the contextual variants when those are configured and are
// no-ops for nil dependencies, so components can call them unconditionally.

// LogDebug logs at debug level, preferring the ContextualLogger.
func (o Observability) LogDebug(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}

// LogInfo logs at info level, preferring the ContextualLogger.
func (o Observability) LogInfo(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if o.Logger != nil {
		o.Logger.Info(msg, args...)
	}
}

// LogWarn logs at warn level, preferring the ContextualLogger.
func (o Observability) LogWarn(ctx context.Context, msg string, args ...any) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if o.Logger != nil {
		o.Logger.Warn(msg, args...)
	}
}

// LogError logs err under the "error" attribute at error level, preferring the ContextualLogger.
func (o Observability) LogError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{"error", err.Error()}
	allArgs = append(allArgs, args...)

	if o.ContextualLogger != nil {
		o.ContextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if o.Logger != nil {
		o.Logger.Error(msg, allArgs...)
	}
}

// RecordDuration records a duration metric, using the context-aware method if available.
func (o Observability) RecordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if o.MetricsCollector == nil {
		return
	}

	if contextual, ok := o.MetricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	o.MetricsCollector.RecordDuration(metric, duration, labels)
}

// IncrementCounter increments a counter metric, using the context-aware method if available.
func (o Observability) IncrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if o.MetricsCollector == nil {
		return
	}

	if contextual, ok := o.MetricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	o.MetricsCollector.IncrementCounter(metric, labels)
}

// AddCounter adds delta to a counter metric, using the context-aware method if available.
// Deltas below one are not recorded.
func (o Observability) AddCounter(ctx context.Context, metric string, delta int64, labels map[string]string) {
	if o.MetricsCollector == nil || delta < 1 {
		return
	}

	if contextual, ok := o.MetricsCollector.(ContextualMetricsCollector); ok {
		contextual.AddCounterContext(ctx, metric, delta, labels)
		return
	}

	o.MetricsCollector.AddCounter(metric, delta, labels)
}

// RecordValue records a value metric, using the context-aware method if available.
func (o Observability) RecordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if o.MetricsCollector == nil {
		return
	}

	if contextual, ok := o.MetricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	o.MetricsCollector.RecordValue(metric, value, labels)
}

// StartSpan starts a tracing span if the tracing collector is configured.
// The returned SpanContext is nil without a collector.
func (o Observability) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if o.TracingCollector == nil {
		return ctx, nil
	}

	return o.TracingCollector.StartSpan(ctx, name, attrs)
}

// FinishSpan finishes a tracing span if the tracing collector is configured.
func (o Observability) FinishSpan(spanCtx SpanContext, status string, attrs map[string]string) {
	if o.TracingCollector == nil || spanCtx == nil {
		return
	}

	o.TracingCollector.FinishSpan(spanCtx, status, attrs)
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func ToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
