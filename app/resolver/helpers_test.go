package resolver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookcatalog-go/app/resolver"
	"github.com/AntonStoeckl/bookcatalog-go/app/shell/config"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/eventbus"
)

var ctx = context.Background()

type fixture struct {
	resolvers *resolver.ResolverSet
	bus       *eventbus.Bus
}

func newFixture(t *testing.T, options ...resolver.Option) fixture {
	t.Helper()

	store, err := config.DefaultSeed().NewBookStore()
	require.NoError(t, err)

	bus, err := eventbus.NewBus()
	require.NoError(t, err)

	resolvers, err := resolver.NewResolverSet(store, bus, options...)
	require.NoError(t, err)

	return fixture{resolvers: resolvers, bus: bus}
}

func nextBook(t *testing.T, stream *resolver.BookStream) catalog.Book {
	t.Helper()

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	book, err := stream.Next(waitCtx)
	require.NoError(t, err)

	return book
}

func bookIDs(books catalog.Books) []string {
	ids := make([]string, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}

	return ids
}

func authorInputs(names ...string) []catalog.AuthorInput {
	inputs := make([]catalog.AuthorInput, 0, len(names))
	for i, name := range names {
		inputs = append(inputs, catalog.BuildAuthorInput(name, 30+i))
	}

	return inputs
}
