package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB")
	db := &DB{
		Client:   client,
		Database: client.Database(dbName),
	}
	if err := db.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureIndexes creates the unique ISBN index. The create route's advisory
// pre-check is not atomic; this index is what actually guarantees one record
// per ISBN under concurrent inserts.
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.Books().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "isbn", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (db *DB) Books() *mongo.Collection {
	return db.Database.Collection("books")
}

func (db *DB) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
