package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// SpySpanContext implements catalog.SpanContext for testing.
type SpySpanContext struct {
	mu         sync.Mutex
	status     string
	attributes map[string]string
}

// SetStatus implements catalog.SpanContext.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

// AddAttribute implements catalog.SpanContext.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// Status returns the last status set on the span.
func (c *SpySpanContext) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// Attributes returns a copy of the attributes added to the span.
func (c *SpySpanContext) Attributes() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.attributes)
}

// SpySpanRecord represents a recorded span.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Finished        bool
	Status          string
	EndAttributes   map[string]string
	SpanContext     *SpySpanContext
}

// TracingCollectorSpy captures tracing calls for testing.
type TracingCollectorSpy struct {
	mu      sync.Mutex
	records []SpySpanRecord
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements catalog.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, catalog.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spanCtx := &SpySpanContext{}
	s.records = append(s.records, SpySpanRecord{
		Name:            name,
		StartAttributes: maps.Clone(attrs),
		SpanContext:     spanCtx,
	})

	return ctx, spanCtx
}

// FinishSpan implements catalog.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx catalog.SpanContext, status string, attrs map[string]string) {
	spy, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].SpanContext == spy {
			s.records[i].Finished = true
			s.records[i].Status = status
			s.records[i].EndAttributes = maps.Clone(attrs)
			break
		}
	}
}

// Spans returns a copy of all span records with the given name.
func (s *TracingCollectorSpy) Spans(name string) []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SpySpanRecord, 0)
	for _, rec := range s.records {
		if rec.Name == name {
			out = append(out, rec)
		}
	}

	return out
}

// Count returns the number of started spans.
func (s *TracingCollectorSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured span records.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

var _ catalog.TracingCollector = (*TracingCollectorSpy)(nil)
