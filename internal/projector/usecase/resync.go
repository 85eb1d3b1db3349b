package usecase

import (
	"context"

	"play-economy/internal/model"
	"play-economy/internal/projector"
)

// Resync upserts every catalog item into the mirror and removes mirror records the
// catalog no longer has.
func (uc *implUseCase) Resync(ctx context.Context) (projector.ResyncOutput, error) {
	if uc.catalog == nil {
		return projector.ResyncOutput{}, projector.ErrResyncDisabled
	}

	items, err := uc.catalog.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resync catalog.ListItems: %v", err)
		return projector.ResyncOutput{}, err
	}

	var out projector.ResyncOutput
	live := make(map[string]struct{}, len(items))
	for _, item := range items {
		live[item.ID] = struct{}{}
		if err := uc.mirror.Upsert(ctx, model.CatalogItem{ID: item.ID, Name: item.Name, Description: item.Description}); err != nil {
			uc.l.Errorf(ctx, "uc.Resync mirror.Upsert %s: %v", item.ID, err)
			return out, err
		}
		out.Upserted++
	}

	existing, err := uc.mirror.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resync mirror.GetAll: %v", err)
		return out, err
	}
	for _, ci := range existing {
		if _, ok := live[ci.ID]; ok {
			continue
		}
		if err := uc.mirror.Remove(ctx, ci.ID); err != nil {
			uc.l.Errorf(ctx, "uc.Resync mirror.Remove %s: %v", ci.ID, err)
			return out, err
		}
		out.Removed++
	}

	uc.l.Infof(ctx, "uc.Resync: %d upserted, %d removed", out.Upserted, out.Removed)
	return out, nil
}
