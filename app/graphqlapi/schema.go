package graphqlapi

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/AntonStoeckl/bookcatalog-go/app/resolver"
)

// SchemaSDL is the catalog schema.
const SchemaSDL = `
type Book {
  id: ID
  title: String
  authors: [Author]
}

type Author {
  id: ID
  name: String
  age: Int
  books: [Book]
}

input AuthorInput {
  name: String
  age: Int
}

input BookInput {
  title: String!
  authors: [AuthorInput]!
}

input BookInputForUpdate {
  id: ID!
  title: String!
  authors: [AuthorInput]!
}

type Query {
  books: [Book]
  bookById(id: ID!): Book
  booksByTitle(title: String!): Book
  booksByAuthor(name: String!): [Book]
}

type Mutation {
  createBook(book: BookInput): Book
  updateBook(book: BookInputForUpdate!): [Book]
  deleteBook(id: ID!): [Book]
}

type Subscription {
  newBook: Book
}
`

// NewSchema parses SchemaSDL and binds it to the resolvers.
func NewSchema(resolvers *resolver.ResolverSet, options ...graphql.SchemaOpt) (*graphql.Schema, error) {
	return graphql.ParseSchema(SchemaSDL, NewRootResolver(resolvers), options...)
}
