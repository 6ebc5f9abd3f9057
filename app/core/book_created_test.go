package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookcatalog-go/app/core"
	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

func Test_BuildBookCreated(t *testing.T) {
	occurredAt := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.FixedZone("CET", 3600))

	event := core.BuildBookCreated("Book4", []catalog.AuthorInput{catalog.BuildAuthorInput("Author9", 40)}, occurredAt)

	assert.Equal(t, core.BookCreatedEventType, event.EventType())
	assert.Equal(t, time.UTC, event.HasOccurredAt().Location())
	assert.Equal(t, 123456000, event.HasOccurredAt().Nanosecond())
	assert.Equal(t, "Book4", event.Title)
	assert.Len(t, event.Authors, 1)
}

func Test_BuildBookCreated_NilAuthorsBecomeEmpty(t *testing.T) {
	event := core.BuildBookCreated("Book4", nil, time.Now())

	assert.NotNil(t, event.Authors)
	assert.Empty(t, event.Authors)
}

func Test_BookCreated_AnnouncedBookHasNoID(t *testing.T) {
	event := core.BuildBookCreated("Book4", []catalog.AuthorInput{catalog.BuildAuthorInput("Author9", 40)}, time.Now())

	book := event.AnnouncedBook()

	assert.Empty(t, book.ID)
	assert.Equal(t, "Book4", book.Title)
	assert.True(t, book.HasAuthorNamed("Author9"))
	assert.False(t, book.Authors[0].Indexed())
}

func Test_BuildBookCreated_DoesNotShareCallerAuthorFields(t *testing.T) {
	name, age := "Author9", 40

	event := core.BuildBookCreated("Book4", []catalog.AuthorInput{{Name: &name, Age: &age}}, time.Now())
	name, age = "Changed", 99

	assert.Equal(t, "Author9", *event.Authors[0].Name)
	assert.Equal(t, 40, *event.Authors[0].Age)
}
