package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// SpyMetricRecord represents one recorded metric call.
// Kind is "duration", "counter" or "value". Counter records carry the added delta in Value. WithContext is true for the context-aware variants.
type SpyMetricRecord struct {
	Kind        string
	Metric      string
	Duration    time.Duration
	Value       float64
	Labels      map[string]string
	WithContext bool
}

// MetricsCollectorSpy captures metrics calls for testing.
// It implements catalog.ContextualMetricsCollector, so components pick the context-aware methods.
type MetricsCollectorSpy struct {
	mu      sync.Mutex
	records []SpyMetricRecord
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) add(rec SpyMetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Labels = maps.Clone(rec.Labels)
	s.records = append(s.records, rec)
}

// RecordDuration implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "duration", Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "counter", Metric: metric, Value: 1, Labels: labels})
}

// AddCounter implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) AddCounter(metric string, delta int64, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "counter", Metric: metric, Value: float64(delta), Labels: labels})
}

// RecordValue implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "value", Metric: metric, Value: value, Labels: labels})
}

// RecordDurationContext implements catalog.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "duration", Metric: metric, Duration: duration, Labels: labels, WithContext: true})
}

// IncrementCounterContext implements catalog.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "counter", Metric: metric, Value: 1, Labels: labels, WithContext: true})
}

// AddCounterContext implements catalog.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) AddCounterContext(_ context.Context, metric string, delta int64, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "counter", Metric: metric, Value: float64(delta), Labels: labels, WithContext: true})
}

// RecordValueContext implements catalog.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.add(SpyMetricRecord{Kind: "value", Metric: metric, Value: value, Labels: labels, WithContext: true})
}

// Records returns a copy of all records for the given metric name.
func (s *MetricsCollectorSpy) Records(metric string) []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SpyMetricRecord, 0)
	for _, rec := range s.records {
		if rec.Metric == metric {
			out = append(out, rec)
		}
	}

	return out
}

// HasRecord checks if the metric was recorded with labels containing all of the given key/value pairs.
func (s *MetricsCollectorSpy) HasRecord(metric string, labels map[string]string) bool {
	for _, rec := range s.Records(metric) {
		if containsLabels(rec.Labels, labels) {
			return true
		}
	}

	return false
}

// Count returns the number of recorded calls.
func (s *MetricsCollectorSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

func containsLabels(have, want map[string]string) bool {
	for k, v := range want {
		if have[k] != v {
			return false
		}
	}

	return true
}

var _ catalog.ContextualMetricsCollector = (*MetricsCollectorSpy)(nil)
