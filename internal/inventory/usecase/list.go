package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"play-economy/internal/inventory"
	"play-economy/internal/model"
	"play-economy/pkg/repository"
)

// List returns the user's inventory, oldest acquisition first. Names come from the catalog
// mirror; an item the mirror does not know is still listed, without a name.
func (uc *implUseCase) List(ctx context.Context, userID string) (inventory.ListOutput, error) {
	id, err := canonicalID(userID)
	if err != nil {
		return inventory.ListOutput{}, fmt.Errorf("%w: %q", inventory.ErrInvalidUserID, userID)
	}

	items, err := uc.items.GetAll(ctx, repository.Eq(model.FieldUserID, id))
	if err != nil {
		uc.l.Errorf(ctx, "uc.List items.GetAll: %v", err)
		return inventory.ListOutput{}, err
	}
	if len(items) == 0 {
		return inventory.ListOutput{Items: []inventory.Entry{}}, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.CatalogItemID
	}
	mirror, err := uc.catalogItems.GetAll(ctx, repository.In(repository.FieldID, ids))
	if err != nil {
		uc.l.Errorf(ctx, "uc.List catalogItems.GetAll: %v", err)
		return inventory.ListOutput{}, err
	}
	byID := make(map[string]model.CatalogItem, len(mirror))
	for _, ci := range mirror {
		byID[ci.ID] = ci
	}

	entries := make([]inventory.Entry, len(items))
	for i, item := range items {
		ci, known := byID[item.CatalogItemID]
		entries[i] = inventory.Entry{
			CatalogItemID:    item.CatalogItemID,
			Name:             ci.Name,
			Description:      ci.Description,
			Quantity:         item.Quantity,
			AcquiredDate:     item.AcquiredDate,
			CatalogItemKnown: known,
		}
	}
	slices.SortFunc(entries, func(a, b inventory.Entry) int {
		if c := a.AcquiredDate.Compare(b.AcquiredDate); c != 0 {
			return c
		}
		return strings.Compare(a.CatalogItemID, b.CatalogItemID)
	})

	return inventory.ListOutput{Items: entries}, nil
}
