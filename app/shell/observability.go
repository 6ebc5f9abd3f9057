package shell

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

const (
	// ResolverDurationMetric tracks resolver operation duration (OpenTelemetry-compatible).
	ResolverDurationMetric = "resolver_operation_duration_seconds"

	// ResolverCallsMetric tracks total resolver operation calls.
	ResolverCallsMetric = "resolver_operation_calls_total"

	// ResolverEventPublishFailedMetric tracks createBook calls whose event could not be built.
	ResolverEventPublishFailedMetric = "resolver_event_publish_failures_total"

	// StatusSuccess indicates a completed operation.
	StatusSuccess = "success"

	// StatusNotFound indicates a lookup without result. It is not an error.
	StatusNotFound = "not_found"

	// StatusCanceled indicates a subscription that ended because its context was canceled.
	StatusCanceled = "canceled"

	// StatusTimeout indicates a subscription that ended because its context deadline was exceeded.
	StatusTimeout = "timeout"

	// StatusClosed indicates a subscription that ended because it was unsubscribed.
	StatusClosed = "closed"

	// LogMsgResolverStarted is logged when a resolver operation begins.
	LogMsgResolverStarted = "resolver started"

	// LogMsgResolverCompleted is logged when a resolver operation returns.
	LogMsgResolverCompleted = "resolver completed"

	// LogMsgEventPublished is logged when the createBook event was handed to the bus.
	LogMsgEventPublished = "resolver event published"

	// LogMsgEventPublishFailed is logged when the createBook event could not be built.
	LogMsgEventPublishFailed = "resolver event publishing failed: book was created without announcement"

	// LogMsgEventReceived is logged when a subscription maps an announcement.
	LogMsgEventReceived = "resolver event received"

	// LogMsgEventMappingFailed is logged when a subscription meets an event it cannot map.
	LogMsgEventMappingFailed = "resolver event mapping failed: event skipped"

	// LogMsgSubscriptionEnded is logged when a newBook subscription stream stops.
	LogMsgSubscriptionEnded = "resolver subscription ended"

	// LogAttrOperation identifies the resolver operation in logs.
	LogAttrOperation = "operation"

	// LogAttrStatus indicates the operation status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrEventType identifies the event type in logs.
	LogAttrEventType = "event_type"

	// LogAttrDelivered indicates to how many subscribers an event was delivered.
	LogAttrDelivered = "delivered"

	// LogAttrMessageID identifies the announcement event.
	LogAttrMessageID = "message_id"

	// LogAttrCorrelationID correlates an announcement with the messages it caused.
	LogAttrCorrelationID = "correlation_id"

	// LogAttrSubscriptionID identifies the bus subscription backing a stream.
	LogAttrSubscriptionID = "subscription_id"

	// SpanNameResolverPrefix prefixes the operation name in resolver span names.
	SpanNameResolverPrefix = "resolver."
)

// BuildResolverLabels creates standard metric labels for resolver operations.
func BuildResolverLabels(operation, status string) map[string]string {
	return map[string]string{
		LogAttrOperation: operation,
		LogAttrStatus:    status,
	}
}

// StatusForFound maps a lookup result to StatusSuccess or StatusNotFound.
func StatusForFound(found bool) string {
	if found {
		return StatusSuccess
	}

	return StatusNotFound
}

// StatusForStreamEnd maps the error that ended a subscription stream to a status.
func StatusForStreamEnd(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	default:
		return StatusClosed
	}
}

// ObserveOperation runs resolve inside a resolver span and records metrics and logs around it.
// resolve reports the operation status together with its result.
func ObserveOperation[R any](
	ctx context.Context,
	obs catalog.Observability,
	operation string,
	resolve func(ctx context.Context) (R, string),
) R {
	start := time.Now()
	ctx, span := StartResolverSpan(ctx, obs, operation)
	obs.LogDebug(ctx, LogMsgResolverStarted, LogAttrOperation, operation)

	result, status := resolve(ctx)

	duration := time.Since(start)
	RecordResolverMetrics(ctx, obs, operation, status, duration)
	FinishResolverSpan(obs, span, status, duration)
	LogResolverCompleted(ctx, obs, operation, status, duration)

	return result
}

// StartResolverSpan starts a span named after the operation. The span is nil if tracing is disabled.
func StartResolverSpan(ctx context.Context, obs catalog.Observability, operation string) (context.Context, catalog.SpanContext) {
	return obs.StartSpan(ctx, SpanNameResolverPrefix+operation, map[string]string{LogAttrOperation: operation})
}

// FinishResolverSpan finishes a resolver span with status and duration.
func FinishResolverSpan(obs catalog.Observability, span catalog.SpanContext, status string, duration time.Duration) {
	obs.FinishSpan(span, status, map[string]string{
		LogAttrDurationMS: strconv.FormatFloat(catalog.ToMilliseconds(duration), 'f', 3, 64),
	})
}

// RecordResolverMetrics records the duration and call counter of a resolver operation.
func RecordResolverMetrics(ctx context.Context, obs catalog.Observability, operation, status string, duration time.Duration) {
	labels := BuildResolverLabels(operation, status)

	obs.RecordDuration(ctx, ResolverDurationMetric, duration, labels)
	obs.IncrementCounter(ctx, ResolverCallsMetric, labels)
}

// LogResolverCompleted logs a finished resolver operation at info level.
func LogResolverCompleted(ctx context.Context, obs catalog.Observability, operation, status string, duration time.Duration) {
	obs.LogInfo(ctx, LogMsgResolverCompleted,
		LogAttrOperation, operation,
		LogAttrStatus, status,
		LogAttrDurationMS, catalog.ToMilliseconds(duration))
}
