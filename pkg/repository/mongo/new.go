package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"play-economy/pkg/repository"
)

type implRepository[T repository.Entity] struct {
	coll *mongo.Collection
}

// New creates a MongoDB-backed Repository over db.collection.
// Entities must map their identifier to the "_id" bson key.
func New[T repository.Entity](db *mongo.Database, collection string) repository.Repository[T] {
	if db == nil {
		panic("repository/mongo: db is required")
	}
	return &implRepository[T]{coll: db.Collection(collection)}
}

// EnsureUniqueIndex creates a unique compound index over fields. Increment relies on it to
// keep at most one document per filter combination.
func EnsureUniqueIndex(ctx context.Context, db *mongo.Database, collection string, fields ...string) error {
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: fieldName(f), Value: 1})
	}
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: create index on %s: %v", repository.ErrStorage, collection, err)
	}
	return nil
}
