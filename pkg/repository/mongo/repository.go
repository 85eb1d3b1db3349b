package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"play-economy/pkg/repository"
)

// maxUpsertAttempts bounds retries of Increment when two concurrent upserts both try to insert.
const maxUpsertAttempts = 3

func (r *implRepository[T]) GetAll(ctx context.Context, filters ...repository.Filter) ([]T, error) {
	if err := repository.ValidateFilters(filters); err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, buildFilter(filters))
	if err != nil {
		return nil, r.storageErr("GetAll", err)
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, r.storageErr("GetAll", err)
	}
	return items, nil
}

func (r *implRepository[T]) GetOne(ctx context.Context, id string) (T, error) {
	var item T
	if id == "" {
		return item, fmt.Errorf("%w: id is empty", repository.ErrInvalidArgument)
	}

	err := r.coll.FindOne(ctx, idFilter(id)).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item, repository.ErrNotFound
	}
	if err != nil {
		return item, r.storageErr("GetOne", err)
	}
	return item, nil
}

func (r *implRepository[T]) FindOne(ctx context.Context, filters ...repository.Filter) (T, error) {
	var zero T
	if err := repository.ValidateFilters(filters); err != nil {
		return zero, err
	}

	cur, err := r.coll.Find(ctx, buildFilter(filters), options.Find().SetLimit(2))
	if err != nil {
		return zero, r.storageErr("FindOne", err)
	}
	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return zero, r.storageErr("FindOne", err)
	}
	switch len(items) {
	case 0:
		return zero, repository.ErrNotFound
	case 1:
		return items[0], nil
	default:
		return zero, repository.ErrAmbiguousResult
	}
}

func (r *implRepository[T]) Create(ctx context.Context, item T) error {
	if err := repository.ValidateEntity(item); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: id %s", repository.ErrAlreadyExists, item.GetID())
	}
	if err != nil {
		return r.storageErr("Create", err)
	}
	return nil
}

func (r *implRepository[T]) Update(ctx context.Context, item T) error {
	if err := repository.ValidateEntity(item); err != nil {
		return err
	}

	if _, err := r.coll.ReplaceOne(ctx, idFilter(item.GetID()), item); err != nil {
		return r.storageErr("Update", err)
	}
	return nil
}

func (r *implRepository[T]) Upsert(ctx context.Context, item T) error {
	if err := repository.ValidateEntity(item); err != nil {
		return err
	}

	_, err := r.coll.ReplaceOne(ctx, idFilter(item.GetID()), item, options.Replace().SetUpsert(true))
	if err != nil {
		return r.storageErr("Upsert", err)
	}
	return nil
}

func (r *implRepository[T]) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is empty", repository.ErrInvalidArgument)
	}
	if _, err := r.coll.DeleteOne(ctx, idFilter(id)); err != nil {
		return r.storageErr("Remove", err)
	}
	return nil
}

// Increment issues a single findOneAndUpdate with upsert. On insert the new document takes
// the filter values, the seed's other fields and field = delta. A unique index over the
// filter fields (see EnsureUniqueIndex) turns a concurrent double insert into a duplicate
// key error, after which the retry takes the update path.
func (r *implRepository[T]) Increment(ctx context.Context, seed T, field string, delta int, filters ...repository.Filter) (T, error) {
	var zero T
	if err := repository.EqualityFilters(filters); err != nil {
		return zero, err
	}
	if err := repository.ValidateEntity(seed); err != nil {
		return zero, err
	}

	raw, err := bson.Marshal(seed)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", repository.ErrInvalidArgument, err)
	}
	onInsert := bson.M{}
	if err := bson.Unmarshal(raw, &onInsert); err != nil {
		return zero, fmt.Errorf("%w: %v", repository.ErrInvalidArgument, err)
	}
	delete(onInsert, field)

	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: field, Value: delta}}},
		{Key: "$setOnInsert", Value: onInsert},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var item T
	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		err = r.coll.FindOneAndUpdate(ctx, buildFilter(filters), update, opts).Decode(&item)
		if err == nil {
			return item, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	return zero, r.storageErr("Increment", err)
}

func (r *implRepository[T]) storageErr(method string, err error) error {
	return fmt.Errorf("%w: repository/mongo.%s %s: %v", repository.ErrStorage, method, r.coll.Name(), err)
}
