package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartlibrary/models"
	"smartlibrary/store"
)

// testEnvelope mirrors Envelope with raw data so each test decodes its own
// shape.
type testEnvelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter() *chi.Mux {
	books := &BooksHandler{Store: store.NewMemory()}
	r := chi.NewRouter()
	r.Get("/", Banner)
	r.Get("/health", Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/books", books.List)
		r.Post("/books", books.Create)
		r.Delete("/books/{id}", books.Delete)
	})
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func duneBody() map[string]any {
	return map[string]any{"title": "Dune", "author": "Herbert", "isbn": "123", "year": 1965}
}

func TestCreateListDeleteScenario(t *testing.T) {
	r := newTestRouter()

	// Create succeeds.
	rec, env := doRequest(t, r, http.MethodPost, "/api/books", duneBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Book added successfully", env.Message)
	var created models.Book
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "123", created.ISBN)
	require.False(t, created.ID.IsZero())

	// Identical create is rejected.
	rec, env = doRequest(t, r, http.MethodPost, "/api/books", duneBody())
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "A book with this ISBN already exists", env.Message)

	// Delete returns the record.
	rec, env = doRequest(t, r, http.MethodDelete, "/api/books/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Book deleted successfully", env.Message)
	var deleted models.Book
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, created.ID, deleted.ID)

	// The list no longer contains the ISBN.
	rec, env = doRequest(t, r, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
	var books []models.Book
	require.NoError(t, json.Unmarshal(env.Data, &books))
	assert.Empty(t, books)
}

func TestList_NewestFirstWithCount(t *testing.T) {
	r := newTestRouter()
	for i, isbn := range []string{"a", "b", "c"} {
		body := duneBody()
		body["isbn"] = isbn
		body["title"] = fmt.Sprintf("Book %d", i)
		rec, _ := doRequest(t, r, http.MethodPost, "/api/books", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := doRequest(t, r, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)
	var books []models.Book
	require.NoError(t, json.Unmarshal(env.Data, &books))
	require.Len(t, books, 3)
	assert.Equal(t, "c", books[0].ISBN)
	assert.Equal(t, "a", books[2].ISBN)
}

func TestCreate_MissingFields(t *testing.T) {
	for _, missing := range []string{"title", "author", "isbn", "year"} {
		t.Run(missing, func(t *testing.T) {
			r := newTestRouter()
			body := duneBody()
			delete(body, missing)
			rec, env := doRequest(t, r, http.MethodPost, "/api/books", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "Please provide all required fields: title, author, isbn, and year", env.Message)
		})
	}
}

func TestCreate_YearAsString(t *testing.T) {
	r := newTestRouter()
	body := duneBody()
	body["year"] = "1965"
	rec, env := doRequest(t, r, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var book models.Book
	require.NoError(t, json.Unmarshal(env.Data, &book))
	assert.Equal(t, 1965, book.Year)
}

func TestCreate_YearNotANumber(t *testing.T) {
	r := newTestRouter()
	body := duneBody()
	body["year"] = "next year"
	rec, env := doRequest(t, r, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation error", env.Message)
	assert.NotEmpty(t, env.Error)
}

func TestCreate_YearOutOfRange(t *testing.T) {
	r := newTestRouter()
	body := duneBody()
	body["year"] = time.Now().Year() + 1
	rec, env := doRequest(t, r, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation error", env.Message)
	assert.Contains(t, env.Error, "future")
}

func TestCreate_InvalidJSON(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_MalformedID(t *testing.T) {
	r := newTestRouter()
	rec, env := doRequest(t, r, http.MethodDelete, "/api/books/not-hex", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid book ID format", env.Message)
}

func TestDelete_NotFound(t *testing.T) {
	r := newTestRouter()
	rec, env := doRequest(t, r, http.MethodDelete, "/api/books/ffffffffffffffffffffffff", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found", env.Message)
}

func TestBanner(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var banner struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &banner))
	assert.Contains(t, banner.Message, "running")
	assert.Len(t, banner.Endpoints, 3)
}

func TestUnmatchedRoute(t *testing.T) {
	r := newTestRouter()

	rec, env := doRequest(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	// Unsupported method on a known path is also a 404.
	rec, env = doRequest(t, r, http.MethodPut, "/api/books", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}
