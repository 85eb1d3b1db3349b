package usecase

import (
	"context"
	"fmt"

	"play-economy/internal/event"
	"play-economy/internal/model"
)

// Apply upserts the mirror record on Created and Updated and removes it on Deleted.
// An Updated arriving after a Deleted for the same item recreates the record; the
// mirror then holds a stale entry until the next resync.
func (uc *implUseCase) Apply(ctx context.Context, e model.Event) error {
	switch e := e.(type) {
	case model.CatalogItemCreated:
		return uc.upsert(ctx, model.CatalogItem{ID: e.ID, Name: e.Name, Description: e.Description})
	case model.CatalogItemUpdated:
		return uc.upsert(ctx, model.CatalogItem{ID: e.ID, Name: e.Name, Description: e.Description})
	case model.CatalogItemDeleted:
		if err := uc.mirror.Remove(ctx, e.ID); err != nil {
			uc.l.Errorf(ctx, "uc.Apply mirror.Remove %s: %v", e.ID, err)
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", event.ErrUnknownEvent, e)
	}
}

func (uc *implUseCase) upsert(ctx context.Context, item model.CatalogItem) error {
	if err := uc.mirror.Upsert(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.Apply mirror.Upsert %s: %v", item.ID, err)
		return err
	}
	return nil
}
