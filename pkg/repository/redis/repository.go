package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"play-economy/pkg/repository"
)

func (r *implRepository[T]) GetAll(ctx context.Context, filters ...repository.Filter) ([]T, error) {
	if err := repository.ValidateFilters(filters); err != nil {
		return nil, err
	}

	values, err := r.client.HVals(ctx, r.key).Result()
	if err != nil {
		return nil, r.storageErr("GetAll", err)
	}

	items := make([]T, 0, len(values))
	for _, raw := range values {
		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, r.storageErr("GetAll", err)
		}
		if !repository.MatchAll(doc, filters) {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, r.storageErr("GetAll", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *implRepository[T]) GetOne(ctx context.Context, id string) (T, error) {
	var item T
	if id == "" {
		return item, fmt.Errorf("%w: id is empty", repository.ErrInvalidArgument)
	}

	raw, err := r.client.HGet(ctx, r.key, id).Result()
	if errors.Is(err, redis.Nil) {
		return item, repository.ErrNotFound
	}
	if err != nil {
		return item, r.storageErr("GetOne", err)
	}
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return item, r.storageErr("GetOne", err)
	}
	return item, nil
}

func (r *implRepository[T]) FindOne(ctx context.Context, filters ...repository.Filter) (T, error) {
	var zero T
	items, err := r.GetAll(ctx, filters...)
	if err != nil {
		return zero, err
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
	raw, err := r.encode(item)
	if err != nil {
		return err
	}

	ok, err := r.client.HSetNX(ctx, r.key, item.GetID(), raw).Result()
	if err != nil {
		return r.storageErr("Create", err)
	}
	if !ok {
		return fmt.Errorf("%w: id %s", repository.ErrAlreadyExists, item.GetID())
	}
	return nil
}

func (r *implRepository[T]) Update(ctx context.Context, item T) error {
	raw, err := r.encode(item)
	if err != nil {
		return err
	}

	if err := updateScript.Run(ctx, r.client, []string{r.key}, item.GetID(), raw).Err(); err != nil {
		return r.storageErr("Update", err)
	}
	return nil
}

func (r *implRepository[T]) Upsert(ctx context.Context, item T) error {
	raw, err := r.encode(item)
	if err != nil {
		return err
	}

	if err := r.client.HSet(ctx, r.key, item.GetID(), raw).Err(); err != nil {
		return r.storageErr("Upsert", err)
	}
	return nil
}

func (r *implRepository[T]) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is empty", repository.ErrInvalidArgument)
	}
	if err := r.client.HDel(ctx, r.key, id).Err(); err != nil {
		return r.storageErr("Remove", err)
	}
	return nil
}

func (r *implRepository[T]) Increment(ctx context.Context, seed T, field string, delta int, filters ...repository.Filter) (T, error) {
	var zero T
	if err := repository.EqualityFilters(filters); err != nil {
		return zero, err
	}
	raw, err := r.encode(seed)
	if err != nil {
		return zero, err
	}

	conditions := make(map[string]any, len(filters))
	for _, f := range filters {
		conditions[f.Field] = f.Value
	}
	condJSON, err := json.Marshal(conditions)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", repository.ErrInvalidArgument, err)
	}

	res, err := incrementScript.Run(ctx, r.client, []string{r.key}, string(condJSON), field, delta, seed.GetID(), raw).Text()
	if err != nil {
		if strings.Contains(err.Error(), ambiguousReply) {
			return zero, repository.ErrAmbiguousResult
		}
		return zero, r.storageErr("Increment", err)
	}

	var item T
	if err := json.Unmarshal([]byte(res), &item); err != nil {
		return zero, r.storageErr("Increment", err)
	}
	return item, nil
}

func (r *implRepository[T]) encode(item T) (string, error) {
	if err := repository.ValidateEntity(item); err != nil {
		return "", err
	}
	b, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrInvalidArgument, err)
	}
	return string(b), nil
}

func (r *implRepository[T]) storageErr(method string, err error) error {
	return fmt.Errorf("%w: repository/redis.%s %s: %v", repository.ErrStorage, method, r.key, err)
}

func decodeDocument(raw string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
