package resolver

import (
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// BookInput is the createBook argument.
type BookInput struct {
	Title   string
	Authors []catalog.AuthorInput
}

// BookInputForUpdate is the updateBook argument.
type BookInputForUpdate struct {
	ID      catalog.BookIDString
	Title   string
	Authors []catalog.AuthorInput
}
