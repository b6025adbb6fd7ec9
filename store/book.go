package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartlibrary/models"
)

// AllBooks returns every book, newest-created first. An empty collection
// yields an empty slice, not nil.
func (db *DB) AllBooks(ctx context.Context) ([]models.Book, error) {
	cur, err := db.Books().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// BookByISBN returns the record holding isbn, or ErrNotFound. Used as the
// advisory pre-check before insert.
func (db *DB) BookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var book models.Book
	err := db.Books().FindOne(ctx, bson.M{"isbn": isbn}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *DB) BookByID(ctx context.Context, id string) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var book models.Book
	err = db.Books().FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook validates the input, stamps id and timestamps, and inserts.
// A duplicate-key error from the unique ISBN index maps to ErrDuplicateISBN
// even when the caller's pre-check passed.
func (db *DB) CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error) {
	if verr := validateInput(&in); verr != nil {
		return nil, verr
	}
	book := newBook(in)
	if _, err := db.Books().InsertOne(ctx, book); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateISBN
		}
		return nil, err
	}
	return book, nil
}

// DeleteBook removes the book by id and returns the removed record.
func (db *DB) DeleteBook(ctx context.Context, id string) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var book models.Book
	err = db.Books().FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}
