package resolver

import (
	"context"

	"github.com/AntonStoeckl/bookcatalog-go/app/core"
	"github.com/AntonStoeckl/bookcatalog-go/app/shell"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/eventbus"
)

// BookStream is the newBook subscription: one book per createBook call made after subscribing.
type BookStream struct {
	sub *eventbus.Subscription
	obs catalog.Observability
}

func newBookStream(sub *eventbus.Subscription, obs catalog.Observability) *BookStream {
	return &BookStream{sub: sub, obs: obs}
}

// ID returns the id of the underlying bus subscription.
func (s *BookStream) ID() string {
	return s.sub.ID()
}

// Next returns the next announced book, waiting for it if necessary.
// Events that are not book announcements are skipped. The error is catalog.ErrSubscriptionClosed
// after Close or ctx.Err() on cancellation.
func (s *BookStream) Next(ctx context.Context) (catalog.Book, error) {
	for {
		event, err := s.sub.Next(ctx)
		if err != nil {
			return catalog.Book{}, err
		}

		domainEvent, err := shell.DomainEventFrom(event)
		if err != nil {
			s.obs.LogError(ctx, shell.LogMsgEventMappingFailed, err,
				shell.LogAttrEventType, event.EventType,
				shell.LogAttrSubscriptionID, s.ID())

			continue
		}

		if created, ok := domainEvent.(core.BookCreated); ok {
			s.logReceived(ctx, event)

			return created.AnnouncedBook(), nil
		}
	}
}

// logReceived logs the ids of the announcement. Events without readable metadata are logged without them.
func (s *BookStream) logReceived(ctx context.Context, event catalog.Event) {
	args := []any{
		shell.LogAttrEventType, event.EventType,
		shell.LogAttrSubscriptionID, s.ID(),
	}

	if metadata, err := shell.EventMetadataFrom(event); err == nil {
		args = append(args,
			shell.LogAttrMessageID, metadata.MessageID,
			shell.LogAttrCorrelationID, metadata.CorrelationID)
	}

	s.obs.LogDebug(ctx, shell.LogMsgEventReceived, args...)
}

// C streams announced books until ctx is done or the stream is closed.
// The stream is closed when the channel closes.
func (s *BookStream) C(ctx context.Context) <-chan catalog.Book {
	out := make(chan catalog.Book)

	go func() {
		defer close(out)
		defer s.Close()

		for {
			book, err := s.Next(ctx)
			if err != nil {
				s.obs.LogInfo(ctx, shell.LogMsgSubscriptionEnded,
					shell.LogAttrOperation, OperationNewBook,
					shell.LogAttrStatus, shell.StatusForStreamEnd(err),
					shell.LogAttrSubscriptionID, s.ID())

				return
			}

			select {
			case out <- book:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Pending returns the number of announcements queued but not yet consumed.
func (s *BookStream) Pending() int {
	return s.sub.Pending()
}

// Close unsubscribes. It is safe to call multiple times.
func (s *BookStream) Close() {
	s.sub.Close()
}
