package catalog

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateAuthorID is returned when the author seed contains the same id twice.
	ErrDuplicateAuthorID = errors.New("duplicate author id in seed")

	// ErrEmptyAuthorName is returned when a seeded author has no name.
	ErrEmptyAuthorName = errors.New("seeded author name must not be empty")

	// ErrAuthorAgeOutOfRange is returned when a seeded author's age is negative or too large to serve.
	ErrAuthorAgeOutOfRange = errors.New("seeded author age out of range")

	// ErrNilAuthorIndex is returned when a store is constructed without an author index.
	ErrNilAuthorIndex = errors.New("nil author index supplied")

	// ErrUnknownSeedAuthor is returned when a seeded book references an author id the index does not know.
	ErrUnknownSeedAuthor = errors.New("seed book references unknown author")

	// ErrDuplicateSeedBookID is returned when the book seed contains the same id twice.
	ErrDuplicateSeedBookID = errors.New("duplicate book id in seed")

	// ErrSubscriptionClosed is returned by a subscription after it was unsubscribed.
	ErrSubscriptionClosed = errors.New("subscription is closed")

	// ErrNegativeQueueCapacity is returned for a subscriber queue capacity below zero.
	ErrNegativeQueueCapacity = errors.New("queue capacity must not be negative")

	// ErrUnknownIDStrategy is returned for an id strategy the store does not implement.
	ErrUnknownIDStrategy = errors.New("unknown id strategy")
)

// BookIDString represents a book identifier.
type BookIDString = string

// AuthorIDInt represents an author identifier.
type AuthorIDInt = int

// OccurredAt represents when an event occurred.
type OccurredAt = time.Time
