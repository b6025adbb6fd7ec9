package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"smartlibrary/models"
	"smartlibrary/store"
)

// BookStore is the persistence contract the routes run against. Both the
// Mongo store and the in-memory store satisfy it.
type BookStore interface {
	AllBooks(ctx context.Context) ([]models.Book, error)
	BookByISBN(ctx context.Context, isbn string) (*models.Book, error)
	BookByID(ctx context.Context, id string) (*models.Book, error)
	CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) (*models.Book, error)
}

type BooksHandler struct {
	Store BookStore
}

// List handles GET /api/books.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Store.AllBooks(r.Context())
	if err != nil {
		failWithErr(w, http.StatusInternalServerError, "Failed to fetch books", err)
		return
	}
	count := len(books)
	writeJSON(w, http.StatusOK, Envelope{Success: true, Count: &count, Data: books})
}

// createBookRequest decodes year as json.Number so both 1965 and "1965" are
// accepted.
type createBookRequest struct {
	Title  string      `json:"title"`
	Author string      `json:"author"`
	ISBN   string      `json:"isbn"`
	Year   json.Number `json:"year"`
}

// Create handles POST /api/books.
func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Title == "" || req.Author == "" || req.ISBN == "" || req.Year == "" {
		fail(w, http.StatusBadRequest, "Please provide all required fields: title, author, isbn, and year")
		return
	}
	year, err := strconv.Atoi(req.Year.String())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation error",
			Error:   "year must be a number",
		})
		return
	}

	// Advisory pre-check so the caller gets a clean message; the unique
	// index remains the real guard against racing inserts.
	isbn := strings.TrimSpace(req.ISBN)
	if _, err := h.Store.BookByISBN(r.Context(), isbn); err == nil {
		fail(w, http.StatusBadRequest, "A book with this ISBN already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		failWithErr(w, http.StatusInternalServerError, "Failed to add book", err)
		return
	}

	book, err := h.Store.CreateBook(r.Context(), models.BookInput{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   isbn,
		Year:   year,
	})
	if err != nil {
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, Envelope{
				Success: false,
				Message: "Validation error",
				Error:   verr.Error(),
			})
		case errors.Is(err, store.ErrDuplicateISBN):
			fail(w, http.StatusBadRequest, "A book with this ISBN already exists")
		default:
			failWithErr(w, http.StatusInternalServerError, "Failed to add book", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Message: "Book added successfully", Data: book})
}

// Delete handles DELETE /api/books/{id}. A missing record is a 404 outcome,
// not a server failure.
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := h.Store.DeleteBook(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Book deleted successfully", Data: book})
	case errors.Is(err, store.ErrInvalidID):
		fail(w, http.StatusBadRequest, "Invalid book ID format")
	case errors.Is(err, store.ErrNotFound):
		fail(w, http.StatusNotFound, "Book not found")
	default:
		failWithErr(w, http.StatusInternalServerError, "Failed to delete book", err)
	}
}
