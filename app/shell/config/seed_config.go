package config

import (
	"errors"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/memengine"
)

var (
	// ErrReadingSeedFileFailed is returned when the seed file cannot be read.
	ErrReadingSeedFileFailed = errors.New("reading seed file failed")

	// ErrParsingSeedFileFailed is returned when the seed file is not a valid seed document.
	ErrParsingSeedFileFailed = errors.New("parsing seed file failed")
)

// Seed is the initial content of a catalog.
type Seed struct {
	Authors []catalog.Author
	Books   []memengine.SeedBook
}

type seedDocument struct {
	Authors []seedAuthor `json:"authors"`
	Books   []seedBook   `json:"books"`
}

type seedAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type seedBook struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	AuthorIDs []int  `json:"authorIds"`
}

// DefaultSeed returns the built-in seed: two authors and three books.
func DefaultSeed() Seed {
	return Seed{
		Authors: []catalog.Author{
			{ID: 1, Name: "Author1", Age: 22},
			{ID: 2, Name: "Author2", Age: 25},
		},
		Books: []memengine.SeedBook{
			{ID: "1", Title: "Book1", AuthorIDs: []catalog.AuthorIDInt{1, 2}},
			{ID: "2", Title: "Book2", AuthorIDs: []catalog.AuthorIDInt{2}},
			{ID: "3", Title: "Book3", AuthorIDs: []catalog.AuthorIDInt{1}},
		},
	}
}

// LoadSeedFile reads a JSON seed document:
//
//	{"authors": [{"id": 1, "name": "Author1", "age": 22}],
//	 "books":   [{"id": "1", "title": "Book1", "authorIds": [1]}]}
//
// The content is validated when the store is built, not here.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, errors.Join(ErrReadingSeedFileFailed, err)
	}

	return ParseSeed(raw)
}

// ParseSeed parses a JSON seed document as described for LoadSeedFile.
func ParseSeed(raw []byte) (Seed, error) {
	document := new(seedDocument)

	if err := jsoniter.ConfigFastest.Unmarshal(raw, document); err != nil {
		return Seed{}, errors.Join(ErrParsingSeedFileFailed, err)
	}

	seed := Seed{
		Authors: make([]catalog.Author, 0, len(document.Authors)),
		Books:   make([]memengine.SeedBook, 0, len(document.Books)),
	}

	for _, author := range document.Authors {
		seed.Authors = append(seed.Authors, catalog.Author{ID: author.ID, Name: author.Name, Age: author.Age})
	}

	for _, book := range document.Books {
		seed.Books = append(seed.Books, memengine.SeedBook{ID: book.ID, Title: book.Title, AuthorIDs: book.AuthorIDs})
	}

	return seed, nil
}

// NewBookStore builds the author index and the book store from the seed.
func (s Seed) NewBookStore(options ...memengine.Option) (*memengine.BookStore, error) {
	index, err := memengine.NewAuthorIndex(s.Authors...)
	if err != nil {
		return nil, err
	}

	return memengine.NewBookStore(index, s.Books, options...)
}
