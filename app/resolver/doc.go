// Package resolver binds the named catalog operations to the book store and the event bus.
//
// Queries: Books, BookByID, BooksByTitle, BooksByAuthor.
// Mutations: CreateBook, UpdateBook, DeleteBook.
// Subscription: NewBook.
//
// The ResolverSet is a pure translation layer. The only cross-cutting behavior is in CreateBook,
// which announces a core.BookCreated event built from the raw input before the store assigns
// the id. Subscribers therefore receive the book as submitted, without id, while the mutation
// returns the committed book.
//
// No operation returns an error. Absence is reported as (zero, false) and mutations on
// unknown ids return the unchanged sequence.
package resolver
