package graphqlapi

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/AntonStoeckl/bookcatalog-go/app/resolver"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// RootResolver resolves the Query, Mutation and Subscription fields.
type RootResolver struct {
	resolvers *resolver.ResolverSet
}

// NewRootResolver creates the root resolver for the schema.
func NewRootResolver(resolvers *resolver.ResolverSet) *RootResolver {
	return &RootResolver{resolvers: resolvers}
}

type idArgs struct {
	ID graphql.ID
}

type titleArgs struct {
	Title string
}

type nameArgs struct {
	Name string
}

type createBookArgs struct {
	Book *bookInput
}

type updateBookArgs struct {
	Book bookInputForUpdate
}

func (r *RootResolver) Books(ctx context.Context) *[]*BookResolver {
	return bookList(r.resolvers.Books(ctx))
}

func (r *RootResolver) BookByID(ctx context.Context, args idArgs) *BookResolver {
	return optionalBook(r.resolvers.BookByID(ctx, string(args.ID)))
}

func (r *RootResolver) BooksByTitle(ctx context.Context, args titleArgs) *BookResolver {
	return optionalBook(r.resolvers.BooksByTitle(ctx, args.Title))
}

func (r *RootResolver) BooksByAuthor(ctx context.Context, args nameArgs) *[]*BookResolver {
	return bookList(r.resolvers.BooksByAuthor(ctx, args.Name))
}

// CreateBook resolves to null without creating anything when the book argument is null.
func (r *RootResolver) CreateBook(ctx context.Context, args createBookArgs) *BookResolver {
	if args.Book == nil {
		return nil
	}

	created := r.resolvers.CreateBook(ctx, resolver.BookInput{
		Title:   args.Book.Title,
		Authors: authorInputsFrom(args.Book.Authors),
	})

	return newBookResolver(created)
}

func (r *RootResolver) UpdateBook(ctx context.Context, args updateBookArgs) *[]*BookResolver {
	return bookList(r.resolvers.UpdateBook(ctx, resolver.BookInputForUpdate{
		ID:      string(args.Book.ID),
		Title:   args.Book.Title,
		Authors: authorInputsFrom(args.Book.Authors),
	}))
}

func (r *RootResolver) DeleteBook(ctx context.Context, args idArgs) *[]*BookResolver {
	return bookList(r.resolvers.DeleteBook(ctx, string(args.ID)))
}

// NewBook streams announced books until the subscriber goes away.
func (r *RootResolver) NewBook(ctx context.Context) <-chan *BookResolver {
	books := r.resolvers.NewBook(ctx).C(ctx)
	out := make(chan *BookResolver)

	go func() {
		defer close(out)

		for book := range books {
			select {
			case out <- newBookResolver(book):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func optionalBook(book catalog.Book, found bool) *BookResolver {
	if !found {
		return nil
	}

	return newBookResolver(book)
}
