package catalog

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrInvalidPayloadJSON is returned when an event payload is not valid JSON.
	ErrInvalidPayloadJSON = errors.New("payload json is not valid")

	// ErrInvalidMetadataJSON is returned when event metadata is not valid JSON.
	ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

	// ErrEmptyEventType is returned when an event is built without a type.
	ErrEmptyEventType = errors.New("event type must not be empty")
)

// Events is an alias type for a slice of Event.
type Events = []Event

// Event is a DTO (data transfer object) published on the event bus and delivered to subscribers.
//
// It is built on scalars to stay agnostic of the domain events of the client code.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildEvent
//   - BuildEventWithEmptyMetadata
type Event struct {
	EventType    string
	OccurredAt   OccurredAt
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildEvent is a factory method for Event.
//
// Returns an error if eventType is empty or payloadJSON or metadataJSON are not valid JSON.
func BuildEvent(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (Event, error) {
	if eventType == "" {
		return Event{}, ErrEmptyEventType
	}

	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return Event{}, ErrInvalidPayloadJSON
	}

	if !jsoniter.ConfigFastest.Valid(metadataJSON) {
		return Event{}, ErrInvalidMetadataJSON
	}

	return Event{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildEventWithEmptyMetadata is a factory method for Event that creates valid empty JSON for MetadataJSON.
func BuildEventWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (Event, error) {
	return BuildEvent(eventType, occurredAt, payloadJSON, []byte("{}"))
}
