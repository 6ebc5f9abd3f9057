// Package core contains the domain events of the book catalog.
//
// Domain events are plain structs. The shell package maps them to and from catalog.Event,
// the scalar DTO carried by the event bus.
package core
