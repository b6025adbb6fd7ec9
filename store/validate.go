package store

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartlibrary/models"
)

// Books older than this are assumed to be typos rather than incunabula.
const minYear = 1000

// validateInput trims the string fields in place and checks every schema
// constraint. The year ceiling is the wall-clock year at the time of the
// write; records created in earlier years stay valid, they are just never
// re-checked.
func validateInput(in *models.BookInput) *ValidationError {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)

	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "Book title is required"
	}
	if in.Author == "" {
		fields["author"] = "Author name is required"
	}
	if in.ISBN == "" {
		fields["isbn"] = "ISBN number is required"
	}
	switch {
	case in.Year < minYear:
		fields["year"] = "Year must be a valid year"
	case in.Year > time.Now().Year():
		fields["year"] = "Year cannot be in the future"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// newBook stamps a fresh id and timestamps on a validated input. updatedAt
// starts equal to createdAt and is never touched again since no update
// operation exists.
func newBook(in models.BookInput) *models.Book {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.Book{
		ID:        primitive.NewObjectID(),
		Title:     in.Title,
		Author:    in.Author,
		ISBN:      in.ISBN,
		Year:      in.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
