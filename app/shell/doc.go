// Package shell holds the infrastructure glue between the catalog core and its callers.
//
// It maps domain events to bus events and back, builds event metadata, and provides the
// observability helpers every resolver operation runs through.
package shell
