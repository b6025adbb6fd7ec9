package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartlibrary/models"
)

// Memory is an in-process store with the same contract as the Mongo-backed
// one, including the unique-ISBN guarantee. It backs tests and local
// development without a database.
type Memory struct {
	mu     sync.RWMutex
	books  map[primitive.ObjectID]models.Book
	byISBN map[string]primitive.ObjectID
	order  []primitive.ObjectID
}

func NewMemory() *Memory {
	return &Memory{
		books:  make(map[primitive.ObjectID]models.Book),
		byISBN: make(map[string]primitive.ObjectID),
	}
}

// AllBooks returns every book newest-created first. Inserts are stamped in
// wall-clock order, so reverse insertion order is creation-time descending.
func (m *Memory) AllBooks(ctx context.Context) ([]models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Book, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if b, ok := m.books[m.order[i]]; ok {
			res = append(res, b)
		}
	}
	return res, nil
}

func (m *Memory) BookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byISBN[isbn]
	if !ok {
		return nil, ErrNotFound
	}
	book := m.books[id]
	return &book, nil
}

func (m *Memory) BookByID(ctx context.Context, id string) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	book, ok := m.books[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return &book, nil
}

func (m *Memory) CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error) {
	if verr := validateInput(&in); verr != nil {
		return nil, verr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byISBN[in.ISBN]; exists {
		return nil, ErrDuplicateISBN
	}
	book := newBook(in)
	m.books[book.ID] = *book
	m.byISBN[book.ISBN] = book.ID
	m.order = append(m.order, book.ID)
	return book, nil
}

func (m *Memory) DeleteBook(ctx context.Context, id string) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	book, ok := m.books[oid]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.books, oid)
	delete(m.byISBN, book.ISBN)
	return &book, nil
}
