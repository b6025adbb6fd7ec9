package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a single catalog record. The id and timestamps are assigned by
// the store; everything else comes from the create form.
type Book struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Author    string             `bson:"author" json:"author"`
	ISBN      string             `bson:"isbn" json:"isbn"`
	Year      int                `bson:"year" json:"year"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookInput holds the caller-supplied fields for a new book.
type BookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Year   int    `json:"year"`
}
