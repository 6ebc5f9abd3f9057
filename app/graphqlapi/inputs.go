package graphqlapi

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

type authorInput struct {
	Name *string
	Age  *int32
}

type bookInput struct {
	Title   string
	Authors []*authorInput
}

type bookInputForUpdate struct {
	ID      graphql.ID
	Title   string
	Authors []*authorInput
}

// authorInputsFrom keeps order and presence of fields. A null list element becomes an empty input.
func authorInputsFrom(inputs []*authorInput) []catalog.AuthorInput {
	converted := make([]catalog.AuthorInput, 0, len(inputs))

	for _, input := range inputs {
		var author catalog.AuthorInput

		if input != nil {
			author.Name = input.Name

			if input.Age != nil {
				age := int(*input.Age)
				author.Age = &age
			}
		}

		converted = append(converted, author)
	}

	return converted
}
