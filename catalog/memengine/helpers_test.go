package memengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/memengine"
)

func seedAuthors() []catalog.Author {
	return []catalog.Author{
		{ID: 1, Name: "Author1", Age: 22},
		{ID: 2, Name: "Author2", Age: 25},
	}
}

func seedBooks() []memengine.SeedBook {
	return []memengine.SeedBook{
		{ID: "1", Title: "Book1", AuthorIDs: []catalog.AuthorIDInt{1, 2}},
		{ID: "2", Title: "Book2", AuthorIDs: []catalog.AuthorIDInt{2}},
		{ID: "3", Title: "Book3", AuthorIDs: []catalog.AuthorIDInt{1}},
	}
}

func createSeededStore(t *testing.T, options ...memengine.Option) *memengine.BookStore {
	t.Helper()

	index, err := memengine.NewAuthorIndex(seedAuthors()...)
	require.NoError(t, err, "Should create author index")

	store, err := memengine.NewBookStore(index, seedBooks(), options...)
	require.NoError(t, err, "Should create book store")

	return store
}

func bookIDs(books catalog.Books) []string {
	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}

	return ids
}

func authorNames(t *testing.T, book catalog.Book) []string {
	t.Helper()

	names := make([]string, 0, len(book.Authors))
	for _, ref := range book.Authors {
		name, _ := ref.Name()
		names = append(names, name)
	}

	return names
}

var ctx = context.Background()
