// Package graphqlapi exposes the ResolverSet as a GraphQL service built on graph-gophers/graphql-go.
//
// The schema text, request parsing and validation belong to graphql-go. This package only adapts
// the catalog types to the schema types and serves two endpoints:
//
//   - /query handles queries and mutations (relay compatible JSON over POST)
//   - /subscriptions streams subscription results as server-sent events
//
// Author.books is part of the schema but always resolves to null.
package graphqlapi
