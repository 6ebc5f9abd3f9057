package core

import (
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// BookCreatedEventType is the event type identifier.
const BookCreatedEventType = "BookCreated"

// BookCreated is announced for every createBook call.
//
// It carries the input exactly as submitted and is built before the store assigns an id,
// so it has no id and can differ from the committed Book.
type BookCreated struct {
	Title      string                `json:"title"`
	Authors    []catalog.AuthorInput `json:"authors"`
	OccurredAt OccurredAt            `json:"occurredAt"`
}

// BuildBookCreated creates a new BookCreated event. The authors are deep-copied.
func BuildBookCreated(title string, authors []catalog.AuthorInput, occurredAt time.Time) BookCreated {
	copied := make([]catalog.AuthorInput, 0, len(authors))
	for _, author := range authors {
		copied = append(copied, author.Clone())
	}

	return BookCreated{
		Title:      title,
		Authors:    copied,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCreated) EventType() string {
	return BookCreatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// AnnouncedBook returns the book as subscribers see it: no id, authors stored as given.
func (e BookCreated) AnnouncedBook() catalog.Book {
	return catalog.BuildBook("", e.Title, catalog.AuthorRefsFrom(e.Authors))
}
