package store

import (
	"errors"
	"strings"
)

// Sentinel errors raised by store operations. Handlers branch on these with
// errors.Is rather than inspecting error text.
var (
	ErrNotFound      = errors.New("book not found")
	ErrInvalidID     = errors.New("invalid book id")
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")
)

// validatedFields fixes the order in which field messages are joined so the
// combined message is deterministic.
var validatedFields = []string{"title", "author", "isbn", "year"}

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range validatedFields {
		if m, ok := e.Fields[f]; ok {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, "; ")
}
