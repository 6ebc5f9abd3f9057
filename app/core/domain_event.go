package core

import (
	"time"
)

// DomainEvent represents a business event that has occurred in the catalog.
type DomainEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}
