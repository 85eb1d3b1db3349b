package memory

import (
	"context"
	"errors"
	"fmt"

	"play-economy/pkg/repository"
)

func (r *implRepository[T]) GetAll(ctx context.Context, filters ...repository.Filter) ([]T, error) {
	if err := repository.ValidateFilters(filters); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.records))
	for _, rec := range r.records {
		if !repository.MatchAll(rec.doc, filters) {
			continue
		}
		item, err := decode[T](rec.doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *implRepository[T]) GetOne(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, fmt.Errorf("%w: id is empty", repository.ErrInvalidArgument)
	}

	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return zero, repository.ErrNotFound
	}
	return decode[T](rec.doc)
}

func (r *implRepository[T]) FindOne(ctx context.Context, filters ...repository.Filter) (T, error) {
	var zero T
	if err := repository.ValidateFilters(filters); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, err := r.findLocked(filters)
	if err != nil {
		return zero, err
	}
	return decode[T](doc)
}

func (r *implRepository[T]) Create(ctx context.Context, item T) error {
	doc, err := r.prepare(item)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[item.GetID()]; ok {
		return fmt.Errorf("%w: id %s", repository.ErrAlreadyExists, item.GetID())
	}
	r.records[item.GetID()] = record{doc: doc}
	return nil
}

func (r *implRepository[T]) Update(ctx context.Context, item T) error {
	doc, err := r.prepare(item)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[item.GetID()]; !ok {
		return nil
	}
	r.records[item.GetID()] = record{doc: doc}
	return nil
}

func (r *implRepository[T]) Upsert(ctx context.Context, item T) error {
	doc, err := r.prepare(item)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.records[item.GetID()] = record{doc: doc}
	r.mu.Unlock()
	return nil
}

func (r *implRepository[T]) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is empty", repository.ErrInvalidArgument)
	}

	r.mu.Lock()
	delete(r.records, id)
	r.mu.Unlock()
	return nil
}

func (r *implRepository[T]) Increment(ctx context.Context, seed T, field string, delta int, filters ...repository.Filter) (T, error) {
	var zero T
	if err := repository.EqualityFilters(filters); err != nil {
		return zero, err
	}
	seedDoc, err := r.prepare(seed)
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.findLocked(filters)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if _, ok := r.records[seed.GetID()]; ok {
			return zero, fmt.Errorf("%w: id %s", repository.ErrAlreadyExists, seed.GetID())
		}
		r.records[seed.GetID()] = record{doc: seedDoc}
		return seed, nil
	case err != nil:
		return zero, err
	}

	updated := make(map[string]any, len(doc))
	for k, v := range doc {
		updated[k] = v
	}
	if err := repository.AddToField(updated, field, delta); err != nil {
		return zero, err
	}
	item, err := decode[T](updated)
	if err != nil {
		return zero, err
	}
	r.records[item.GetID()] = record{doc: updated}
	return item, nil
}

// findLocked returns the only document matching filters. Callers hold r.mu.
func (r *implRepository[T]) findLocked(filters []repository.Filter) (map[string]any, error) {
	var found map[string]any
	for _, rec := range r.records {
		if !repository.MatchAll(rec.doc, filters) {
			continue
		}
		if found != nil {
			return nil, repository.ErrAmbiguousResult
		}
		found = rec.doc
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *implRepository[T]) prepare(item T) (map[string]any, error) {
	if err := repository.ValidateEntity(item); err != nil {
		return nil, err
	}
	return repository.ToDocument(item)
}

func decode[T repository.Entity](doc map[string]any) (T, error) {
	item, err := repository.FromDocument[T](doc)
	if err != nil {
		return item, fmt.Errorf("%w: decode: %v", repository.ErrStorage, err)
	}
	return item, nil
}
