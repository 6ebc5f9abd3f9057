// Package oteladapters implements the catalog observability interfaces on top of OpenTelemetry.
//
//   - SlogBridgeLogger and OTelLogger implement catalog.ContextualLogger
//   - MetricsCollector implements catalog.ContextualMetricsCollector
//   - TracingCollector implements catalog.TracingCollector
//
// The adapters are plug-and-play: pass them to the memengine, eventbus and resolver options
// and configure the providers once at startup.
package oteladapters
