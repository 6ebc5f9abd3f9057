package memengine_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
	"github.com/AntonStoeckl/bookcatalog-go/catalog/memengine"
)

func Test_NewBookStore_ErrorCases(t *testing.T) {
	index, err := memengine.NewAuthorIndex(seedAuthors()...)
	require.NoError(t, err)

	tests := []struct {
		name        string
		index       *memengine.AuthorIndex
		seed        []memengine.SeedBook
		options     []memengine.Option
		expectedErr error
	}{
		{
			name:        "nil author index",
			index:       nil,
			expectedErr: catalog.ErrNilAuthorIndex,
		},
		{
			name:        "unknown seed author",
			index:       index,
			seed:        []memengine.SeedBook{{ID: "1", Title: "Book1", AuthorIDs: []catalog.AuthorIDInt{7}}},
			expectedErr: catalog.ErrUnknownSeedAuthor,
		},
		{
			name:        "duplicate seed id",
			index:       index,
			seed:        []memengine.SeedBook{{ID: "1", Title: "A"}, {ID: "1", Title: "B"}},
			expectedErr: catalog.ErrDuplicateSeedBookID,
		},
		{
			name:        "unknown id strategy",
			index:       index,
			options:     []memengine.Option{memengine.WithIDStrategy(memengine.IDStrategy(42))},
			expectedErr: catalog.ErrUnknownIDStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := memengine.NewBookStore(tt.index, tt.seed, tt.options...)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, store)
		})
	}
}

func Test_BookStore_List_ReturnsSeedInOrder(t *testing.T) {
	store := createSeededStore(t)

	books := store.List(ctx)

	assert.Equal(t, []string{"1", "2", "3"}, bookIDs(books))
	assert.Equal(t, []string{"Author1", "Author2"}, authorNames(t, books[0]))
	assert.True(t, books[0].Authors[0].Indexed(), "Seed authors should be indexed references")
}

func Test_BookStore_SeedAuthorsAreSharedReferences(t *testing.T) {
	store := createSeededStore(t)

	book1, _ := store.GetByID(ctx, "1")
	book3, _ := store.GetByID(ctx, "3")

	a1, ok1 := book1.Authors[0].Author()
	a3, ok3 := book3.Authors[0].Author()
	require.True(t, ok1)
	require.True(t, ok3)
	assert.Equal(t, a1, a3, "Books should reference the same indexed Author1")

	indexed, _ := store.Authors().ByID(1)
	assert.Equal(t, indexed, a1)
}

func Test_BookStore_SeedAuthorsCannotBeChangedThroughLookups(t *testing.T) {
	// arrange
	store := createSeededStore(t)

	// act
	indexed, _ := store.Authors().ByID(1)
	indexed.Name = "Hacked"
	book, _ := store.GetByID(ctx, "1")
	fromBook, _ := book.Authors[0].Author()
	fromBook.Name = "Hacked"

	// assert
	stored, _ := store.GetByID(ctx, "1")
	assert.Equal(t, []string{"Author1", "Author2"}, authorNames(t, stored))
	assert.Len(t, store.GetByAuthorName(ctx, "Author1"), 2)
	assert.Empty(t, store.GetByAuthorName(ctx, "Hacked"))
}

func Test_BookStore_List_IsASnapshot(t *testing.T) {
	store := createSeededStore(t)

	before := store.List(ctx)
	store.Create(ctx, "Book4", nil)
	before[0].Title = "changed by caller"

	assert.Len(t, before, 3, "Earlier result must not change with later mutations")
	book, _ := store.GetByID(ctx, "1")
	assert.Equal(t, "Book1", book.Title, "Mutating a result must not reach the store")
}

func Test_BookStore_GetByID(t *testing.T) {
	store := createSeededStore(t)

	book, found := store.GetByID(ctx, "2")
	assert.True(t, found)
	assert.Equal(t, "Book2", book.Title)

	missing, found := store.GetByID(ctx, "42")
	assert.False(t, found, "Unknown id should be absent")
	assert.Equal(t, catalog.Book{}, missing)
}

func Test_BookStore_GetByTitle_ExactMatchAndIdempotent(t *testing.T) {
	store := createSeededStore(t)

	first, found := store.GetByTitle(ctx, "Book3")
	require.True(t, found)
	second, _ := store.GetByTitle(ctx, "Book3")

	assert.Equal(t, "3", first.ID)
	assert.Equal(t, first, second, "Lookup should be idempotent without intervening mutation")

	_, found = store.GetByTitle(ctx, "book3")
	assert.False(t, found, "Title match should be exact")
}

func Test_BookStore_GetByTitle_ReturnsFirstMatch(t *testing.T) {
	store := createSeededStore(t)

	store.Create(ctx, "Book1", nil)

	book, found := store.GetByTitle(ctx, "Book1")
	require.True(t, found)
	assert.Equal(t, "1", book.ID)
}

func Test_BookStore_GetByAuthorName(t *testing.T) {
	store := createSeededStore(t)
	store.Create(ctx, "Book4", []catalog.AuthorInput{catalog.BuildAuthorInput("Author2", 25)})
	store.Create(ctx, "Book5", []catalog.AuthorInput{catalog.BuildAuthorInput("Stranger", 40)})

	tests := []struct {
		name        string
		authorName  string
		expectedIDs []string
	}{
		{name: "indexed author on several books", authorName: "Author1", expectedIDs: []string{"1", "3"}},
		{name: "indexed and raw refs", authorName: "Author2", expectedIDs: []string{"1", "2", "4"}},
		{name: "raw ref only", authorName: "Stranger", expectedIDs: []string{"5"}},
		{name: "unknown name", authorName: "Nobody", expectedIDs: []string{}},
		{name: "case sensitive", authorName: "author1", expectedIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := store.GetByAuthorName(ctx, tt.authorName)

			assert.NotNil(t, books)
			assert.Equal(t, tt.expectedIDs, bookIDs(books))
		})
	}
}

func Test_BookStore_Create(t *testing.T) {
	store := createSeededStore(t)

	created := store.Create(ctx, "Book4", []catalog.AuthorInput{catalog.BuildAuthorInput("Ghost", 99)})

	assert.Equal(t, "4", created.ID)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 4, store.Len(ctx))

	found, ok := store.GetByID(ctx, created.ID)
	require.True(t, ok, "Created book should be found by id")
	assert.Equal(t, created, found)

	ref := found.Authors[0]
	assert.False(t, ref.Indexed(), "Authors should be stored as given")
	_, hasID := ref.ID()
	assert.False(t, hasID, "Raw authors carry no id")
}

func Test_BookStore_Create_KeepsPartialAuthorInput(t *testing.T) {
	store := createSeededStore(t)
	name := "OnlyName"

	created := store.Create(ctx, "Book4", []catalog.AuthorInput{{Name: &name}, {}})

	require.Len(t, created.Authors, 2)
	n, ok := created.Authors[0].Name()
	assert.True(t, ok)
	assert.Equal(t, "OnlyName", n)
	_, ok = created.Authors[0].Age()
	assert.False(t, ok, "Missing age should stay missing")
	_, ok = created.Authors[1].Name()
	assert.False(t, ok, "Empty input should stay empty")
}

func Test_BookStore_Create_DoesNotShareCallerAuthorFields(t *testing.T) {
	// arrange
	store := createSeededStore(t)
	name, age := "Author9", 40

	// act
	created := store.Create(ctx, "Book4", []catalog.AuthorInput{{Name: &name, Age: &age}})
	name, age = "Changed", 99

	// assert
	stored, _ := store.GetByID(ctx, created.ID)
	assert.Equal(t, []string{"Author9"}, authorNames(t, stored))
	storedAge, _ := stored.Authors[0].Age()
	assert.Equal(t, 40, storedAge)
}

func Test_BookStore_Update_DoesNotShareCallerAuthorFields(t *testing.T) {
	store := createSeededStore(t)
	name := "Author9"

	store.Update(ctx, "2", "Book2-v2", []catalog.AuthorInput{{Name: &name}})
	name = "Changed"

	stored, _ := store.GetByID(ctx, "2")
	assert.Equal(t, []string{"Author9"}, authorNames(t, stored))
}

func Test_BookStore_Update(t *testing.T) {
	store := createSeededStore(t)
	before := store.List(ctx)

	books := store.Update(ctx, "2", "Book2-v2", []catalog.AuthorInput{catalog.BuildAuthorInput("Author1", 22)})

	require.Len(t, books, 3)
	assert.Equal(t, []string{"1", "2", "3"}, bookIDs(books), "Position should be preserved")
	assert.Equal(t, "Book2-v2", books[1].Title)
	assert.Equal(t, []string{"Author1"}, authorNames(t, books[1]))
	assert.Equal(t, before[0], books[0], "Other entries should be unchanged")
	assert.Equal(t, before[2], books[2], "Other entries should be unchanged")
}

func Test_BookStore_Update_UnknownIDIsNoOp(t *testing.T) {
	store := createSeededStore(t)
	before := store.List(ctx)

	books := store.Update(ctx, "42", "Nope", nil)

	assert.Equal(t, before, books, "Returned sequence should equal the pre-call sequence")
	assert.Equal(t, before, store.List(ctx))
}

func Test_BookStore_Delete(t *testing.T) {
	store := createSeededStore(t)

	books := store.Delete(ctx, "2")

	assert.Equal(t, []string{"1", "3"}, bookIDs(books))
	_, found := store.GetByID(ctx, "2")
	assert.False(t, found, "Deleted book should be absent")
}

func Test_BookStore_Delete_UnknownIDIsNoOp(t *testing.T) {
	store := createSeededStore(t)

	books := store.Delete(ctx, "42")

	assert.Equal(t, []string{"1", "2", "3"}, bookIDs(books))
}

func Test_BookStore_SeedScenario(t *testing.T) {
	store := createSeededStore(t)

	created := store.Create(ctx, "Book4", []catalog.AuthorInput{})
	assert.Equal(t, "4", created.ID)
	assert.Len(t, store.List(ctx), 4)

	afterDelete := store.Delete(ctx, "2")
	assert.Len(t, afterDelete, 3)
	assert.NotContains(t, bookIDs(afterDelete), "2")

	store.Update(ctx, "1", "Book1-v2", []catalog.AuthorInput{})
	book, found := store.GetByID(ctx, "1")
	require.True(t, found)
	assert.Equal(t, "Book1-v2", book.Title)
}

func Test_BookStore_SizeBasedIDs_CollideAfterDeletion(t *testing.T) {
	store := createSeededStore(t)

	store.Create(ctx, "Book4", nil)
	store.Delete(ctx, "2")
	collision := store.Create(ctx, "Book5", nil)

	assert.Equal(t, "4", collision.ID, "Size-based ids are reused after deletion")
	assert.Equal(t, []string{"1", "3", "4", "4"}, bookIDs(store.List(ctx)))

	first, _ := store.GetByID(ctx, "4")
	assert.Equal(t, "Book4", first.Title, "Lookups return the first match")
}

func Test_BookStore_MonotonicIDs_NeverReuse(t *testing.T) {
	store := createSeededStore(t, memengine.WithIDStrategy(memengine.MonotonicIDs))

	first := store.Create(ctx, "Book4", nil)
	store.Delete(ctx, "2")
	store.Delete(ctx, "4")
	second := store.Create(ctx, "Book5", nil)

	assert.Equal(t, "4", first.ID)
	assert.Equal(t, "5", second.ID)
}

func Test_IDStrategy_String(t *testing.T) {
	assert.Equal(t, "size_based", memengine.SizeBasedIDs.String())
	assert.Equal(t, "monotonic", memengine.MonotonicIDs.String())
	assert.Equal(t, "unknown", memengine.IDStrategy(9).String())
}

func Test_BookStore_ConcurrentMutationsKeepConsistentState(t *testing.T) {
	store := createSeededStore(t, memengine.WithIDStrategy(memengine.MonotonicIDs))

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			book := store.Create(ctx, "Concurrent", nil)
			store.Update(ctx, book.ID, "Updated", nil)
			store.List(ctx)
		}()
	}
	wg.Wait()

	books := store.List(ctx)
	assert.Len(t, books, 3+workers)

	seen := make(map[string]bool)
	for _, b := range books {
		assert.False(t, seen[b.ID], "Monotonic ids should be unique")
		seen[b.ID] = true
	}
	assert.Len(t, store.GetByAuthorName(ctx, "Author1"), 2)
}
