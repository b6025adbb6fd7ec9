// Package client is the data-access layer for the catalog API: one HTTP
// call per operation, envelope unwrapping, no retries and no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartlibrary/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a failed response decoded from the envelope. Message carries
// the server's user-facing text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New constructs a client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope mirrors the server's uniform response body with data left raw so
// each operation can decode its own shape.
type envelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// List fetches all books, newest first.
func (c *Client) List(ctx context.Context) ([]models.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/books", nil)
	if err != nil {
		return nil, err
	}
	env, err := c.do(req)
	if err != nil {
		return nil, err
	}
	books := []models.Book{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &books); err != nil {
			return nil, err
		}
	}
	return books, nil
}

// Create submits a new book and returns the created record.
func (c *Client) Create(ctx context.Context, in models.BookInput) (*models.Book, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/books", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	env, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var book models.Book
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes a book by id and returns the deleted record.
func (c *Client) Delete(ctx context.Context, id string) (*models.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/books/"+id, nil)
	if err != nil {
		return nil, err
	}
	env, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var book models.Book
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) do(req *http.Request) (*envelope, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{Status: resp.StatusCode, Message: resp.Status}
		}
		return nil, err
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
	return &env, nil
}
