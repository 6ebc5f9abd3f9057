package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// TracingCollector implements catalog.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector on the given tracer.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span as child of the span in ctx, if any, and returns the derived context.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, catalog.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds the final attributes, maps status to a span status and ends the span.
// Span contexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx catalog.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ catalog.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext wraps an OpenTelemetry span as catalog.SpanContext.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps catalog status strings to span status codes.
// A lookup that finds nothing is not an error, unknown statuses are kept as attribute.
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case "ok", "success":
		s.span.SetStatus(codes.Ok, "")
	case "not_found":
		s.span.SetStatus(codes.Ok, "")
		s.span.SetAttributes(attribute.String("status", status))
	case "error", "failed":
		s.span.SetStatus(codes.Error, "Operation failed")
	case "canceled", "cancelled":
		s.span.SetStatus(codes.Error, "Operation canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		s.span.SetAttributes(attribute.String("status", status))
	}
}

func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var _ catalog.SpanContext = (*OTelSpanContext)(nil)
