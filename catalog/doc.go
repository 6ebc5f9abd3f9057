// Package catalog provides the core types and abstractions of the in-memory book catalog.
//
// This package defines the data model shared by the store, event bus and resolver layers,
// the published event DTO, the common error definitions and the dependency-free
// observability interfaces used across the engine implementations.
//
// Key types:
//   - Book: a catalog entry with an ordered list of author references
//   - Author: a member of the static, seeded author set
//   - AuthorInput: author data exactly as submitted by a client
//   - AuthorRef: a tagged reference to either an indexed Author or a raw AuthorInput
//   - Event: a published notification with JSON payload and metadata
//
// Author.Books is part of the declared API shape but is never populated:
// books reference authors, authors never reference books.
//
// Common usage pattern:
//
//	index, err := memengine.NewAuthorIndex(authors...)
//	store, err := memengine.NewBookStore(index, seedBooks, memengine.WithLogger(logger))
//
//	book := store.Create(ctx, "Book4", []catalog.AuthorInput{catalog.BuildAuthorInput("Author1", 22)})
//	found, ok := store.GetByID(ctx, book.ID)
package catalog
