package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"play-economy/internal/catalog"
	"play-economy/internal/model"
)

// Create assigns an identifier and creation time, persists the Item, then announces it.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	if err := validateItem(input.Name, input.Price); err != nil {
		return catalog.CreateItemOutput{}, err
	}

	item := model.Item{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		// document stores keep millisecond precision
		CreatedDate: uc.clock.Now().Truncate(time.Millisecond),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.Create: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	err := uc.publish(ctx, model.CatalogItemCreated{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
	})
	return catalog.CreateItemOutput{Item: item}, err
}
