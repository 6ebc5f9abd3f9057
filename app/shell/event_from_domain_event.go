package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookcatalog-go/app/core"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

var (
	// ErrMappingToEventFailedForDomainEvent is returned when domain event serialization fails.
	ErrMappingToEventFailedForDomainEvent = errors.New("mapping to event failed for domain event")

	// ErrMappingToEventFailedForMetadata is returned when metadata serialization fails.
	ErrMappingToEventFailedForMetadata = errors.New("mapping to event failed for metadata")
)

// EventFrom converts a DomainEvent and EventMetadata to a catalog.Event.
func EventFrom(event core.DomainEvent, metadata EventMetadata) (catalog.Event, error) {
	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return catalog.Event{}, errors.Join(ErrMappingToEventFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(metadata)
	if err != nil {
		return catalog.Event{}, errors.Join(ErrMappingToEventFailedForMetadata, err)
	}

	busEvent, err := catalog.BuildEvent(event.EventType(), event.HasOccurredAt(), payloadJSON, metadataJSON)
	if err != nil {
		return catalog.Event{}, errors.Join(ErrMappingToEventFailedForDomainEvent, err)
	}

	return busEvent, nil
}
