package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/app/core"
	"github.com/AntonStoeckl/bookcatalog-go/app/shell"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/eventbus"
)

var (
	// ErrNilBookStore is returned when a ResolverSet is constructed without a store.
	ErrNilBookStore = errors.New("nil book store supplied")

	// ErrNilEventBus is returned when a ResolverSet is constructed without an event bus.
	ErrNilEventBus = errors.New("nil event bus supplied")

	// ErrNilClock is returned by WithClock for a nil clock.
	ErrNilClock = errors.New("nil clock supplied")
)

const (
	OperationBooks         = "books"
	OperationBookByID      = "bookById"
	OperationBooksByTitle  = "booksByTitle"
	OperationBooksByAuthor = "booksByAuthor"
	OperationCreateBook    = "createBook"
	OperationUpdateBook    = "updateBook"
	OperationDeleteBook    = "deleteBook"
	OperationNewBook       = "newBook"
)

// BookStore is the storage the resolvers delegate to. *memengine.BookStore implements it.
type BookStore interface {
	List(ctx context.Context) catalog.Books
	GetByID(ctx context.Context, id catalog.BookIDString) (catalog.Book, bool)
	GetByTitle(ctx context.Context, title string) (catalog.Book, bool)
	GetByAuthorName(ctx context.Context, name string) catalog.Books
	Create(ctx context.Context, title string, authors []catalog.AuthorInput) catalog.Book
	Update(ctx context.Context, id catalog.BookIDString, title string, authors []catalog.AuthorInput) catalog.Books
	Delete(ctx context.Context, id catalog.BookIDString) catalog.Books
}

// EventBus is the channel book announcements are published on. *eventbus.Bus implements it.
type EventBus interface {
	Publish(ctx context.Context, event catalog.Event) int
	Subscribe(ctx context.Context) *eventbus.Subscription
}

// ResolverSet implements the catalog operations.
type ResolverSet struct {
	store BookStore
	bus   EventBus
	obs   catalog.Observability
	now   func() time.Time
}

// NewResolverSet creates a ResolverSet on the given store and bus.
func NewResolverSet(store BookStore, bus EventBus, options ...Option) (*ResolverSet, error) {
	if store == nil {
		return nil, ErrNilBookStore
	}

	if bus == nil {
		return nil, ErrNilEventBus
	}

	r := &ResolverSet{
		store: store,
		bus:   bus,
		now:   time.Now,
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Books returns the full ordered sequence.
func (r *ResolverSet) Books(ctx context.Context) catalog.Books {
	return shell.ObserveOperation(ctx, r.obs, OperationBooks, func(ctx context.Context) (catalog.Books, string) {
		return r.store.List(ctx), shell.StatusSuccess
	})
}

// BookByID returns the first book with the id.
func (r *ResolverSet) BookByID(ctx context.Context, id catalog.BookIDString) (catalog.Book, bool) {
	result := shell.ObserveOperation(ctx, r.obs, OperationBookByID, func(ctx context.Context) (lookup, string) {
		book, found := r.store.GetByID(ctx, id)
		return lookup{book: book, found: found}, shell.StatusForFound(found)
	})

	return result.book, result.found
}

// BooksByTitle returns the first book with exactly the title.
func (r *ResolverSet) BooksByTitle(ctx context.Context, title string) (catalog.Book, bool) {
	result := shell.ObserveOperation(ctx, r.obs, OperationBooksByTitle, func(ctx context.Context) (lookup, string) {
		book, found := r.store.GetByTitle(ctx, title)
		return lookup{book: book, found: found}, shell.StatusForFound(found)
	})

	return result.book, result.found
}

// BooksByAuthor returns all books with at least one author named exactly name.
func (r *ResolverSet) BooksByAuthor(ctx context.Context, name string) catalog.Books {
	return shell.ObserveOperation(ctx, r.obs, OperationBooksByAuthor, func(ctx context.Context) (catalog.Books, string) {
		books := r.store.GetByAuthorName(ctx, name)
		return books, shell.StatusForFound(len(books) > 0)
	})
}

// CreateBook announces the raw input on the bus, then stores the book and returns it.
// A failure to build the announcement is logged, the book is created anyway.
func (r *ResolverSet) CreateBook(ctx context.Context, input BookInput) catalog.Book {
	return shell.ObserveOperation(ctx, r.obs, OperationCreateBook, func(ctx context.Context) (catalog.Book, string) {
		r.announce(ctx, core.BuildBookCreated(input.Title, input.Authors, r.now()))

		return r.store.Create(ctx, input.Title, input.Authors), shell.StatusSuccess
	})
}

// UpdateBook replaces the book with the input id and returns the full sequence.
func (r *ResolverSet) UpdateBook(ctx context.Context, input BookInputForUpdate) catalog.Books {
	return shell.ObserveOperation(ctx, r.obs, OperationUpdateBook, func(ctx context.Context) (catalog.Books, string) {
		return r.store.Update(ctx, input.ID, input.Title, input.Authors), shell.StatusSuccess
	})
}

// DeleteBook removes the book with the id and returns the full sequence.
func (r *ResolverSet) DeleteBook(ctx context.Context, id catalog.BookIDString) catalog.Books {
	return shell.ObserveOperation(ctx, r.obs, OperationDeleteBook, func(ctx context.Context) (catalog.Books, string) {
		return r.store.Delete(ctx, id), shell.StatusSuccess
	})
}

// NewBook subscribes to book announcements. Only books created from now on are delivered.
// The caller must Close the stream.
func (r *ResolverSet) NewBook(ctx context.Context) *BookStream {
	return shell.ObserveOperation(ctx, r.obs, OperationNewBook, func(ctx context.Context) (*BookStream, string) {
		return newBookStream(r.bus.Subscribe(ctx), r.obs), shell.StatusSuccess
	})
}

type lookup struct {
	book  catalog.Book
	found bool
}

func (r *ResolverSet) announce(ctx context.Context, event core.BookCreated) {
	metadata := shell.BuildInitialEventMetadata()

	busEvent, err := shell.EventFrom(event, metadata)
	if err != nil {
		r.obs.LogError(ctx, shell.LogMsgEventPublishFailed, err, shell.LogAttrEventType, event.EventType())
		r.obs.IncrementCounter(ctx, shell.ResolverEventPublishFailedMetric, map[string]string{shell.LogAttrEventType: event.EventType()})

		return
	}

	delivered := r.bus.Publish(ctx, busEvent)

	r.obs.LogDebug(ctx, shell.LogMsgEventPublished,
		shell.LogAttrEventType, busEvent.EventType,
		shell.LogAttrMessageID, metadata.MessageID,
		shell.LogAttrDelivered, delivered)
}
