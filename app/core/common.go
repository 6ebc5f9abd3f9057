package core

import (
	"time"
)

// OccurredAt represents when a domain event occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
