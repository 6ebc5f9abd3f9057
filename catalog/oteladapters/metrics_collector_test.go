package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/bookcatalog-go/catalog/oteladapters"
)

func newManualCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func findMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Aggregation {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				return m.Data
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return nil
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	collector, reader := newManualCollector()

	collector.RecordDuration("bookstore_operation_duration_seconds", 150*time.Millisecond,
		map[string]string{"operation": "list", "status": "success"})

	histogram, ok := findMetric(t, collect(t, reader), "bookstore_operation_duration_seconds").(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)

	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)

	expected := attribute.NewSet(attribute.String("operation", "list"), attribute.String("status", "success"))
	assert.True(t, dataPoint.Attributes.Equals(&expected))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	collector, reader := newManualCollector()
	labels := map[string]string{"operation": "create"}

	collector.IncrementCounter("bookstore_operations_total", labels)
	collector.IncrementCounterContext(context.Background(), "bookstore_operations_total", labels)
	collector.IncrementCounter("bookstore_operations_total", labels)

	sum, ok := findMetric(t, collect(t, reader), "bookstore_operations_total").(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
	assert.True(t, sum.IsMonotonic)
}

func Test_MetricsCollector_AddCounter(t *testing.T) {
	collector, reader := newManualCollector()
	labels := map[string]string{"event_type": "BookCreated"}

	collector.AddCounter("eventbus_events_delivered_total", 3, labels)
	collector.AddCounterContext(context.Background(), "eventbus_events_delivered_total", 4, labels)
	collector.AddCounter("eventbus_events_delivered_total", -2, labels)
	collector.IncrementCounter("eventbus_events_delivered_total", labels)

	sum, ok := findMetric(t, collect(t, reader), "eventbus_events_delivered_total").(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(8), sum.DataPoints[0].Value, "Negative deltas must be ignored")
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	collector, reader := newManualCollector()

	collector.RecordValue("bookstore_books_total", 3, nil)
	collector.RecordValueContext(context.Background(), "bookstore_books_total", 4, nil)

	gauge, ok := findMetric(t, collect(t, reader), "bookstore_books_total").(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 4.0, gauge.DataPoints[0].Value, 0)
}

func Test_MetricsCollector_ConcurrentUse(t *testing.T) {
	collector, reader := newManualCollector()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter("eventbus_events_published_total", nil)
			collector.RecordDuration("resolver_operation_duration_seconds", time.Millisecond, nil)
		}()
	}
	wg.Wait()

	sum, ok := findMetric(t, collect(t, reader), "eventbus_events_published_total").(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(20), sum.DataPoints[0].Value)
}
