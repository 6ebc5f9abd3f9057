package memengine

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// SeedBook describes a book of the initial catalog. Authors are referenced by index id.
type SeedBook struct {
	ID        catalog.BookIDString
	Title     string
	AuthorIDs []catalog.AuthorIDInt
}

// BookStore owns the ordered sequence of books.
type BookStore struct {
	mu         sync.RWMutex
	books      catalog.Books
	authors    *AuthorIndex
	idStrategy IDStrategy
	highestID  int
	obs        catalog.Observability
}

// NewBookStore creates a BookStore seeded with the given books.
//
// Seed authors are resolved against the index and held as shared references.
// Returns an error if the index is nil, a seed book references an unknown author,
// seed ids are duplicated, or an option fails.
func NewBookStore(authors *AuthorIndex, seed []SeedBook, options ...Option) (*BookStore, error) {
	if authors == nil {
		return nil, catalog.ErrNilAuthorIndex
	}

	bs := &BookStore{
		books:      make(catalog.Books, 0, len(seed)),
		authors:    authors,
		idStrategy: SizeBasedIDs,
	}

	for _, option := range options {
		if err := option(bs); err != nil {
			return nil, err
		}
	}

	seen := make(map[catalog.BookIDString]struct{}, len(seed))
	for _, s := range seed {
		if _, dup := seen[s.ID]; dup {
			return nil, catalog.ErrDuplicateSeedBookID
		}
		seen[s.ID] = struct{}{}

		refs := make([]catalog.AuthorRef, 0, len(s.AuthorIDs))
		for _, authorID := range s.AuthorIDs {
			ref, ok := authors.ref(authorID)
			if !ok {
				return nil, catalog.ErrUnknownSeedAuthor
			}
			refs = append(refs, ref)
		}

		bs.books = append(bs.books, catalog.BuildBook(s.ID, s.Title, refs))
		bs.observeID(s.ID)
	}

	return bs, nil
}

// Authors returns the author index the store was seeded from.
func (bs *BookStore) Authors() *AuthorIndex {
	return bs.authors
}

// Len returns the current number of books.
func (bs *BookStore) Len(_ context.Context) int {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	return len(bs.books)
}

// List returns the full ordered sequence of books.
//
// The result is a snapshot taken under the read lock, later mutations do not change it.
func (bs *BookStore) List(ctx context.Context) catalog.Books {
	ctx, span, start := bs.begin(ctx, operationList)

	bs.mu.RLock()
	books := cloneBooks(bs.books)
	bs.mu.RUnlock()

	bs.finishQuery(ctx, span, start, operationList, statusSuccess, len(books))

	return books
}

// GetByID returns the first book with the given id.
func (bs *BookStore) GetByID(ctx context.Context, id catalog.BookIDString) (catalog.Book, bool) {
	ctx, span, start := bs.begin(ctx, operationGetByID)

	bs.mu.RLock()
	idx := bs.indexOf(id)
	var book catalog.Book
	if idx >= 0 {
		book = bs.books[idx].Clone()
	}
	bs.mu.RUnlock()

	bs.finishQuery(ctx, span, start, operationGetByID, foundStatus(idx >= 0), boolToCount(idx >= 0))

	return book, idx >= 0
}

// GetByTitle returns the first book whose title exactly equals the given title.
func (bs *BookStore) GetByTitle(ctx context.Context, title string) (catalog.Book, bool) {
	ctx, span, start := bs.begin(ctx, operationGetByTitle)

	bs.mu.RLock()
	idx := slices.IndexFunc(bs.books, func(b catalog.Book) bool {
		return b.Title == title
	})
	var book catalog.Book
	if idx >= 0 {
		book = bs.books[idx].Clone()
	}
	bs.mu.RUnlock()

	bs.finishQuery(ctx, span, start, operationGetByTitle, foundStatus(idx >= 0), boolToCount(idx >= 0))

	return book, idx >= 0
}

// GetByAuthorName returns all books with at least one author whose name exactly equals name.
//
// Every stored author ref is matched by name, indexed ones as well as refs stored from raw
// input. The author index is consulted only to report whether the name is an indexed author.
func (bs *BookStore) GetByAuthorName(ctx context.Context, name string) catalog.Books {
	ctx, span, start := bs.begin(ctx, operationGetByAuthorName)

	bs.mu.RLock()
	books := make(catalog.Books, 0)
	for _, b := range bs.books {
		if b.HasAuthorNamed(name) {
			books = append(books, b.Clone())
		}
	}
	bs.mu.RUnlock()

	bs.obs.LogDebug(ctx, logMsgAuthorSearch, logAttrIndexedAuthor, bs.authors.Knows(name), logAttrBookCount, len(books))
	bs.finishQuery(ctx, span, start, operationGetByAuthorName, foundStatus(len(books) > 0), len(books))

	return books
}

// Create appends a new book and returns it.
//
// The id is assigned by the configured IDStrategy. Authors are stored exactly as given,
// they are not resolved against the author index.
func (bs *BookStore) Create(ctx context.Context, title string, authors []catalog.AuthorInput) catalog.Book {
	ctx, span, start := bs.begin(ctx, operationCreate)

	bs.mu.Lock()
	book := catalog.BuildBook(bs.nextID(), title, catalog.AuthorRefsFrom(authors))
	bs.books = append(bs.books, book)
	size := len(bs.books)
	bs.mu.Unlock()

	book = book.Clone()

	bs.finishMutation(ctx, span, start, operationCreate, statusSuccess, book.ID, size)

	return book
}

// Update replaces the book with the given id in place, preserving its position, and returns
// the full sequence. For an unknown id the sequence is returned unmodified.
func (bs *BookStore) Update(
	ctx context.Context,
	id catalog.BookIDString,
	title string,
	authors []catalog.AuthorInput,
) catalog.Books {

	ctx, span, start := bs.begin(ctx, operationUpdate)

	bs.mu.Lock()
	idx := bs.indexOf(id)
	if idx >= 0 {
		bs.books[idx] = catalog.BuildBook(id, title, catalog.AuthorRefsFrom(authors))
	}
	books := cloneBooks(bs.books)
	bs.mu.Unlock()

	bs.finishMutation(ctx, span, start, operationUpdate, foundStatus(idx >= 0), id, len(books))

	return books
}

// Delete removes the first book with the given id, if any, and returns the full sequence.
func (bs *BookStore) Delete(ctx context.Context, id catalog.BookIDString) catalog.Books {
	ctx, span, start := bs.begin(ctx, operationDelete)

	bs.mu.Lock()
	idx := bs.indexOf(id)
	if idx >= 0 {
		bs.books = slices.Delete(bs.books, idx, idx+1)
	}
	books := cloneBooks(bs.books)
	bs.mu.Unlock()

	bs.finishMutation(ctx, span, start, operationDelete, foundStatus(idx >= 0), id, len(books))

	return books
}

func cloneBooks(books catalog.Books) catalog.Books {
	out := make(catalog.Books, 0, len(books))
	for _, b := range books {
		out = append(out, b.Clone())
	}

	return out
}

// indexOf must be called with the lock held.
func (bs *BookStore) indexOf(id catalog.BookIDString) int {
	return slices.IndexFunc(bs.books, func(b catalog.Book) bool {
		return b.ID == id
	})
}

func (bs *BookStore) begin(ctx context.Context, operation string) (context.Context, catalog.SpanContext, time.Time) {
	ctx, span := bs.obs.StartSpan(ctx, spanNamePrefix+operation, map[string]string{spanAttrOperation: operation})

	return ctx, span, time.Now()
}

func foundStatus(found bool) string {
	if found {
		return statusSuccess
	}

	return statusNotFound
}

func boolToCount(b bool) int {
	if b {
		return 1
	}

	return 0
}
