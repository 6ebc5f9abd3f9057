package memengine

import (
	"strconv"

	"github.com/AntonStoeckl/bookcatalog-go/catalog"
)

// IDStrategy defines how the BookStore assigns ids to created books.
type IDStrategy int

const (
	// SizeBasedIDs assigns stringified(current size + 1). This is the default.
	// After a deletion the next id can collide with an existing one, e.g. with books
	// "1","2","3","4" deleting "2" makes the next created book "4" again.
	SizeBasedIDs IDStrategy = iota

	// MonotonicIDs assigns one more than the highest numeric id ever held by the store,
	// seed ids included, so ids are never reused.
	MonotonicIDs
)

// String provides a string representation of IDStrategy for logging and debugging.
func (s IDStrategy) String() string {
	switch s {
	case SizeBasedIDs:
		return "size_based"
	case MonotonicIDs:
		return "monotonic"
	default:
		return "unknown"
	}
}

func (s IDStrategy) valid() bool {
	return s == SizeBasedIDs || s == MonotonicIDs
}

// nextID must be called with the store's write lock held.
func (bs *BookStore) nextID() catalog.BookIDString {
	switch bs.idStrategy {
	case MonotonicIDs:
		bs.highestID++
		return strconv.Itoa(bs.highestID)
	default:
		id := len(bs.books) + 1
		if id > bs.highestID {
			bs.highestID = id
		}
		return strconv.Itoa(id)
	}
}

// observeID tracks the highest numeric id seen. Non-numeric ids are ignored.
func (bs *BookStore) observeID(id catalog.BookIDString) {
	if n, err := strconv.Atoi(id); err == nil && n > bs.highestID {
		bs.highestID = n
	}
}
