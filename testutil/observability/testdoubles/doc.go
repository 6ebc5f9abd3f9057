// Package testdoubles provides test doubles (spies) for the catalog observability interfaces.
//
//   - LoggerSpy: captures catalog.Logger calls
//   - ContextualLoggerSpy: captures catalog.ContextualLogger calls together with their context
//   - MetricsCollectorSpy: captures metrics recording calls, optionally context-aware
//   - TracingCollectorSpy: captures started and finished spans
//
// All spies are safe for concurrent use, event bus delivery and resolver calls may log
// from different goroutines.
package testdoubles
