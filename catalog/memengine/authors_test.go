package memengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/memengine"
)

func Test_NewAuthorIndex_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		authors     []catalog.Author
		expectedErr error
	}{
		{
			name:        "duplicate id",
			authors:     []catalog.Author{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}},
			expectedErr: catalog.ErrDuplicateAuthorID,
		},
		{
			name:        "negative age",
			authors:     []catalog.Author{{ID: 1, Name: "A", Age: -1}},
			expectedErr: catalog.ErrAuthorAgeOutOfRange,
		},
		{
			name:        "age too large to serve",
			authors:     []catalog.Author{{ID: 1, Name: "A", Age: memengine.MaxAuthorAge + 1}},
			expectedErr: catalog.ErrAuthorAgeOutOfRange,
		},
		{
			name:        "empty name",
			authors:     []catalog.Author{{ID: 1, Name: ""}},
			expectedErr: catalog.ErrEmptyAuthorName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := memengine.NewAuthorIndex(tt.authors...)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_AuthorIndex_Lookups(t *testing.T) {
	index, err := memengine.NewAuthorIndex(seedAuthors()...)
	require.NoError(t, err)

	author, ok := index.ByID(2)
	require.True(t, ok, "Should find author 2")
	assert.Equal(t, "Author2", author.Name)
	assert.Equal(t, 25, author.Age)

	_, ok = index.ByID(99)
	assert.False(t, ok, "Should not find unknown author id")

	byName := index.ByName("Author1")
	require.Len(t, byName, 1)
	assert.Equal(t, 1, byName[0].ID)
	assert.Equal(t, byName[0], index.All()[0], "ByName and All should describe the same author")

	assert.Empty(t, index.ByName("author1"), "Name lookup should be exact")
	assert.True(t, index.Knows("Author2"))
	assert.False(t, index.Knows("Nobody"))
	assert.Equal(t, 2, index.Len())
}

func Test_AuthorIndex_IsIsolatedFromSeedSlice(t *testing.T) {
	authors := seedAuthors()
	index, err := memengine.NewAuthorIndex(authors...)
	require.NoError(t, err)

	authors[0].Name = "Changed"

	author, _ := index.ByID(1)
	assert.Equal(t, "Author1", author.Name, "Mutating the seed slice must not reach the index")
	assert.Nil(t, author.Books, "Author.Books is never populated")
}

func Test_AuthorIndex_LookupsReturnCopies(t *testing.T) {
	index, err := memengine.NewAuthorIndex(seedAuthors()...)
	require.NoError(t, err)

	byID, _ := index.ByID(1)
	byID.Name = "Hacked"
	byName := index.ByName("Author1")
	byName[0].Age = 99
	all := index.All()
	all[0].Name = "Hacked"

	author, _ := index.ByID(1)
	assert.Equal(t, "Author1", author.Name)
	assert.Equal(t, 22, author.Age)
	assert.True(t, index.Knows("Author1"))
	assert.False(t, index.Knows("Hacked"))
}
