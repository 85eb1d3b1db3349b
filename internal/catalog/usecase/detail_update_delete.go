package usecase

import (
	"context"
	"errors"

	"play-economy/internal/catalog"
	"play-economy/internal/model"
	"play-economy/pkg/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	item, err := uc.get(ctx, id)
	if err != nil {
		return catalog.DetailItemOutput{}, err
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// Update fully replaces an existing Item, keeping its ID and CreatedDate, then announces it.
func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	if _, err := parseID(input.ID); err != nil {
		return catalog.UpdateItemOutput{}, err
	}
	if err := validateItem(input.Name, input.Price); err != nil {
		return catalog.UpdateItemOutput{}, err
	}

	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return catalog.UpdateItemOutput{}, err
	}

	item := model.Item{
		ID:          existing.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedDate: existing.CreatedDate,
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.Update repo.Update: %v", err)
		return catalog.UpdateItemOutput{}, err
	}

	err = uc.publish(ctx, model.CatalogItemUpdated{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
	})
	return catalog.UpdateItemOutput{Item: item}, err
}

// Delete removes an Item by ID, then announces it. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Remove(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete repo.Remove: %v", err)
		return err
	}
	return uc.publish(ctx, model.CatalogItemDeleted{ID: existing.ID})
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.Item, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Item{}, err
	}
	item, err := uc.repo.GetOne(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Item{}, catalog.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.get repo.GetOne: %v", err)
		return model.Item{}, err
	}
	return item, nil
}
