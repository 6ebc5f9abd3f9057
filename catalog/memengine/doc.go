// Package memengine provides the in-memory engine of the book catalog.
//
// It contains the AuthorIndex, a read-only author table seeded once at construction,
// and the BookStore, which owns the ordered sequence of books and exposes
// create/read/update/delete operations on it.
//
// Store operations never fail at runtime: absence is reported as (zero, false) or as the
// unchanged sequence. Only construction validates its input and returns errors.
//
// All operations are safe for concurrent use. One sync.RWMutex guards the book sequence,
// every call observes a consistent state before and after each operation.
//
// Observability is optional and configured with functional options:
//
//	store, err := memengine.NewBookStore(
//		index,
//		seed,
//		memengine.WithLogger(slog.Default()),
//		memengine.WithMetrics(metricsCollector),
//		memengine.WithTracing(tracingCollector),
//		memengine.WithIDStrategy(memengine.MonotonicIDs),
//	)
package memengine
