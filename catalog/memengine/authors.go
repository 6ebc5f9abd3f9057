package memengine

import (
	"math"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// MaxAuthorAge is the highest age an indexed author may have, ages are served as 32-bit ints.
const MaxAuthorAge = math.MaxInt32

// AuthorIndex is the static, read-only author table.
// It is seeded once at construction and offers no mutation API. Lookups return copies.
type AuthorIndex struct {
	authors []*catalog.Author
	byID    map[catalog.AuthorIDInt]*catalog.Author
	byName  map[string][]*catalog.Author
}

// NewAuthorIndex seeds an AuthorIndex. The given authors are copied.
// Returns an error for duplicate ids, empty names or ages outside 0..MaxAuthorAge.
func NewAuthorIndex(authors ...catalog.Author) (*AuthorIndex, error) {
	idx := &AuthorIndex{
		authors: make([]*catalog.Author, 0, len(authors)),
		byID:    make(map[catalog.AuthorIDInt]*catalog.Author, len(authors)),
		byName:  make(map[string][]*catalog.Author, len(authors)),
	}

	for _, a := range authors {
		if a.Name == "" {
			return nil, catalog.ErrEmptyAuthorName
		}

		if a.Age < 0 || a.Age > MaxAuthorAge {
			return nil, catalog.ErrAuthorAgeOutOfRange
		}

		if _, exists := idx.byID[a.ID]; exists {
			return nil, catalog.ErrDuplicateAuthorID
		}

		author := &catalog.Author{ID: a.ID, Name: a.Name, Age: a.Age}
		idx.authors = append(idx.authors, author)
		idx.byID[author.ID] = author
		idx.byName[author.Name] = append(idx.byName[author.Name], author)
	}

	return idx, nil
}

// ByName returns all authors with exactly the given name, in seed order.
func (idx *AuthorIndex) ByName(name string) []catalog.Author {
	return copyAuthors(idx.byName[name])
}

// ByID returns the author with the given id.
func (idx *AuthorIndex) ByID(id catalog.AuthorIDInt) (catalog.Author, bool) {
	author, ok := idx.byID[id]
	if !ok {
		return catalog.Author{}, false
	}

	return *author, true
}

// ref returns the shared reference to the indexed author that seeded books hold.
func (idx *AuthorIndex) ref(id catalog.AuthorIDInt) (catalog.AuthorRef, bool) {
	author, ok := idx.byID[id]
	if !ok {
		return catalog.AuthorRef{}, false
	}

	return catalog.IndexedAuthorRef(author), true
}

// Knows reports whether at least one indexed author has the given name.
func (idx *AuthorIndex) Knows(name string) bool {
	return len(idx.byName[name]) > 0
}

// All returns all authors in seed order.
func (idx *AuthorIndex) All() []catalog.Author {
	return copyAuthors(idx.authors)
}

// Len returns the number of indexed authors.
func (idx *AuthorIndex) Len() int {
	return len(idx.authors)
}

func copyAuthors(authors []*catalog.Author) []catalog.Author {
	out := make([]catalog.Author, 0, len(authors))
	for _, author := range authors {
		out = append(out, *author)
	}

	return out
}
