package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related messages.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID     `json:"messageId"`
	CausationID   CausationID   `json:"causationId"`
	CorrelationID CorrelationID `json:"correlationId"`
}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// BuildInitialEventMetadata creates metadata for an event that starts a new causation chain:
// message, causation and correlation id are the same fresh UUID.
func BuildInitialEventMetadata() EventMetadata {
	id := uuid.New()

	return BuildEventMetadata(id, id, id)
}

// EventMetadataFrom extracts EventMetadata from a catalog.Event.
func EventMetadataFrom(event catalog.Event) (EventMetadata, error) {
	metadata := new(EventMetadata)

	if err := jsoniter.ConfigFastest.Unmarshal(event.MetadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}
