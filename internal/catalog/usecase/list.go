package usecase

import (
	"context"

	"play-economy/internal/catalog"
)

// List returns every Item.
func (uc *implUseCase) List(ctx context.Context) (catalog.ListItemsOutput, error) {
	items, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.GetAll: %v", err)
		return catalog.ListItemsOutput{}, err
	}
	return catalog.ListItemsOutput{Items: items}, nil
}
