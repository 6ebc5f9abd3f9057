package config

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/oteladapters"
)

// DefaultOTLPEndpoint is the OpenTelemetry Collector gRPC endpoint used when none is configured.
const DefaultOTLPEndpoint = "localhost:4317"

const metricExportInterval = 5 * time.Second

// ObservabilityProviders holds the OpenTelemetry providers of the process.
//
// No LoggerProvider is installed, component logs reach OpenTelemetry only through the global one.
// Set LogHandler to also write them locally.
type ObservabilityProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Resource       *resource.Resource
	LogHandler     slog.Handler
}

// NewObservabilityProviders creates OTLP gRPC trace and metric providers for endpoint and installs them globally.
// Exporters connect lazily, construction succeeds without a running collector.
func NewObservabilityProviders(ctx context.Context, endpoint, serviceName, serviceVersion string) (*ObservabilityProviders, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx))
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval))),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &ObservabilityProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		Resource:       res,
	}, nil
}

// Observability returns catalog observability for one component backed by these providers.
func (p *ObservabilityProviders) Observability(component string) catalog.Observability {
	return ObservabilityFrom(p.TracerProvider, p.MeterProvider, component, p.LogHandler)
}

// Shutdown flushes and stops both providers. Errors of both are joined.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
	)
}

// ObservabilityFrom wires the OpenTelemetry adapters for component on the given providers.
// Logging goes through the otelslog bridge on the global LoggerProvider and, if logHandler
// is not nil, to logHandler as well.
func ObservabilityFrom(
	tracerProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	component string,
	logHandler slog.Handler,
) catalog.Observability {

	var logger catalog.ContextualLogger = oteladapters.NewSlogBridgeLogger(component)
	if logHandler != nil {
		logger = oteladapters.NewSlogBridgeLoggerTee(component, logHandler)
	}

	return catalog.Observability{
		ContextualLogger: logger,
		MetricsCollector: oteladapters.NewMetricsCollector(meterProvider.Meter(component)),
		TracingCollector: oteladapters.NewTracingCollector(tracerProvider.Tracer(component)),
	}
}
