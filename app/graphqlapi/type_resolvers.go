package graphqlapi

import (
	"math"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// BookResolver resolves the Book type.
type BookResolver struct {
	book catalog.Book
}

func newBookResolver(book catalog.Book) *BookResolver {
	return &BookResolver{book: book}
}

// ID is null for announced books, they have no id yet.
func (r *BookResolver) ID() *graphql.ID {
	if r.book.ID == "" {
		return nil
	}

	id := graphql.ID(r.book.ID)

	return &id
}

func (r *BookResolver) Title() *string {
	return &r.book.Title
}

func (r *BookResolver) Authors() *[]*AuthorResolver {
	authors := make([]*AuthorResolver, 0, len(r.book.Authors))
	for _, ref := range r.book.Authors {
		authors = append(authors, &AuthorResolver{ref: ref})
	}

	return &authors
}

// AuthorResolver resolves the Author type for indexed authors and stored inputs alike.
type AuthorResolver struct {
	ref catalog.AuthorRef
}

func (r *AuthorResolver) ID() *graphql.ID {
	id, ok := r.ref.ID()
	if !ok {
		return nil
	}

	gid := graphql.ID(strconv.Itoa(id))

	return &gid
}

func (r *AuthorResolver) Name() *string {
	name, ok := r.ref.Name()
	if !ok {
		return nil
	}

	return &name
}

// Age is null for ages that do not fit a GraphQL Int. Indexed ages always fit.
func (r *AuthorResolver) Age() *int32 {
	age, ok := r.ref.Age()
	if !ok {
		return nil
	}

	if age < math.MinInt32 || age > math.MaxInt32 {
		return nil
	}

	age32 := int32(age)

	return &age32
}

// Books is never populated.
func (r *AuthorResolver) Books() *[]*BookResolver {
	return nil
}

func bookList(books catalog.Books) *[]*BookResolver {
	resolvers := make([]*BookResolver, 0, len(books))
	for _, book := range books {
		resolvers = append(resolvers, newBookResolver(book))
	}

	return &resolvers
}
