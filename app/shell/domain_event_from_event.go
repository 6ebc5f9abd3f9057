package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookcatalog-go/app/core"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventFrom converts a catalog.Event to its corresponding DomainEvent.
func DomainEventFrom(event catalog.Event) (core.DomainEvent, error) {
	switch event.EventType {
	case core.BookCreatedEventType:
		return unmarshalBookCreated(event.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalBookCreated(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookCreated)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload); err != nil {
		return core.BookCreated{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BuildBookCreated(payload.Title, payload.Authors, payload.OccurredAt), nil
}
