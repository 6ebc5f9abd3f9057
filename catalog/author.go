package catalog

// Author is a member of the static author set. It is seeded once and never changes.
//
// Books is declared for the API shape only. No operation ever fills it.
type Author struct {
	ID    AuthorIDInt
	Name  string
	Age   int
	Books []*Book
}

func (a *Author) copy() Author {
	return Author{ID: a.ID, Name: a.Name, Age: a.Age}
}

// AuthorInput is author data exactly as a client submitted it. Both fields are optional.
type AuthorInput struct {
	Name *string `json:"name,omitempty"`
	Age  *int    `json:"age,omitempty"`
}

// BuildAuthorInput creates an AuthorInput with both fields present.
func BuildAuthorInput(name string, age int) AuthorInput {
	return AuthorInput{Name: &name, Age: &age}
}

// Clone returns a copy that shares no memory with the input.
func (in AuthorInput) Clone() AuthorInput {
	var out AuthorInput

	if in.Name != nil {
		name := *in.Name
		out.Name = &name
	}

	if in.Age != nil {
		age := *in.Age
		out.Age = &age
	}

	return out
}

// AuthorRef is a tagged reference held by a Book.
//
// It points either to an indexed Author (seed data) or to a raw AuthorInput that was
// stored as given. Raw inputs are never resolved against the author index, so a ref can
// describe an author that does not exist anywhere else.
type AuthorRef struct {
	author *Author
	input  *AuthorInput
}

// IndexedAuthorRef references an Author from the author index.
// The ref shares the pointer, the Author must not change afterwards.
func IndexedAuthorRef(author *Author) AuthorRef {
	return AuthorRef{author: author}
}

// InputAuthorRef stores a copy of an AuthorInput as given.
func InputAuthorRef(input AuthorInput) AuthorRef {
	stored := input.Clone()

	return AuthorRef{input: &stored}
}

// AuthorRefsFrom stores all inputs as given, preserving order.
func AuthorRefsFrom(inputs []AuthorInput) []AuthorRef {
	refs := make([]AuthorRef, 0, len(inputs))
	for _, input := range inputs {
		refs = append(refs, InputAuthorRef(input))
	}

	return refs
}

// Indexed reports whether the ref points to an Author of the index.
func (r AuthorRef) Indexed() bool {
	return r.author != nil
}

// Author returns a copy of the referenced indexed Author, if any.
func (r AuthorRef) Author() (Author, bool) {
	if r.author == nil {
		return Author{}, false
	}

	return r.author.copy(), true
}

// ID returns the author id. Raw inputs carry no id.
func (r AuthorRef) ID() (AuthorIDInt, bool) {
	if r.author != nil {
		return r.author.ID, true
	}

	return 0, false
}

// Name returns the author name if present.
func (r AuthorRef) Name() (string, bool) {
	switch {
	case r.author != nil:
		return r.author.Name, true
	case r.input != nil && r.input.Name != nil:
		return *r.input.Name, true
	default:
		return "", false
	}
}

// Age returns the author age if present.
func (r AuthorRef) Age() (int, bool) {
	switch {
	case r.author != nil:
		return r.author.Age, true
	case r.input != nil && r.input.Age != nil:
		return *r.input.Age, true
	default:
		return 0, false
	}
}

// HasName reports whether the ref carries exactly the given name.
func (r AuthorRef) HasName(name string) bool {
	n, ok := r.Name()

	return ok && n == name
}
