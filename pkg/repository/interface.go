package repository

import "context"

// FieldID is the document field holding an entity's identifier.
const FieldID = "id"

// Entity is anything stored in a collection under a unique identifier.
type Entity interface {
	GetID() string
}

// Repository is the data access contract over one entity type's collection.
// Every method is a single atomic document-store call.
type Repository[T Entity] interface {
	// GetAll returns every record matching all filters; no filters means the whole collection.
	GetAll(ctx context.Context, filters ...Filter) ([]T, error)

	// GetOne returns the record with the given id or ErrNotFound.
	GetOne(ctx context.Context, id string) (T, error)

	// FindOne returns the single record matching all filters.
	// ErrNotFound when nothing matches, ErrAmbiguousResult when more than one does.
	FindOne(ctx context.Context, filters ...Filter) (T, error)

	// Create inserts item. Its identifier must already be set.
	Create(ctx context.Context, item T) error

	// Update replaces the record with item's identifier. No-op when no such record exists.
	Update(ctx context.Context, item T) error

	// Upsert replaces the record with item's identifier, inserting it when absent.
	Upsert(ctx context.Context, item T) error

	// Remove deletes the record with the given id. No-op when absent.
	Remove(ctx context.Context, id string) error

	// Increment atomically adds delta to the integer field of the one record matching the
	// equality filters and returns it. When nothing matches, seed is inserted and returned.
	Increment(ctx context.Context, seed T, field string, delta int, filters ...Filter) (T, error)
}
