package catalog

import "slices"

// Books is an alias type for a slice of Book.
type Books = []Book

// Book is a catalog entry. Authors are shared references, a Book never owns them.
type Book struct {
	ID      BookIDString
	Title   string
	Authors []AuthorRef
}

// BuildBook is a factory method for Book. The authors slice is copied.
func BuildBook(id BookIDString, title string, authors []AuthorRef) Book {
	return Book{
		ID:      id,
		Title:   title,
		Authors: slices.Clone(authors),
	}
}

// HasAuthorNamed reports whether at least one author of the book has exactly the given name.
func (b Book) HasAuthorNamed(name string) bool {
	return slices.ContainsFunc(b.Authors, func(ref AuthorRef) bool {
		return ref.HasName(name)
	})
}

// Clone returns a copy of the book that shares the referenced authors but not the authors slice.
func (b Book) Clone() Book {
	return BuildBook(b.ID, b.Title, b.Authors)
}
