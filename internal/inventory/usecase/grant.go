package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"play-economy/internal/inventory"
	"play-economy/internal/metrics"
	"play-economy/internal/model"
	"play-economy/pkg/repository"
)

// Grant adds quantity to the user's record for the catalog item, creating it on the first
// grant. The read-modify-write is a single atomic repository call, so concurrent grants
// for the same pair accumulate and never produce a second record.
func (uc *implUseCase) Grant(ctx context.Context, input inventory.GrantInput) (inventory.GrantOutput, error) {
	userID, err := canonicalID(input.UserID)
	if err != nil {
		return inventory.GrantOutput{}, fmt.Errorf("%w: %q", inventory.ErrInvalidUserID, input.UserID)
	}
	catalogItemID, err := canonicalID(input.CatalogItemID)
	if err != nil {
		return inventory.GrantOutput{}, fmt.Errorf("%w: %q", inventory.ErrInvalidCatalogItemID, input.CatalogItemID)
	}
	if input.Quantity <= 0 {
		return inventory.GrantOutput{}, inventory.ErrInvalidQuantity
	}

	seed := model.InventoryItem{
		ID:            uuid.NewString(),
		UserID:        userID,
		CatalogItemID: catalogItemID,
		Quantity:      input.Quantity,
		// document stores keep millisecond precision
		AcquiredDate: uc.clock.Now().Truncate(time.Millisecond),
	}

	item, err := uc.items.Increment(ctx, seed, model.FieldQuantity, input.Quantity,
		repository.Eq(model.FieldUserID, userID),
		repository.Eq(model.FieldCatalogItemID, catalogItemID),
	)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Grant items.Increment: %v", err)
		return inventory.GrantOutput{}, err
	}

	metrics.GrantedQuantityTotal.Add(float64(input.Quantity))
	uc.l.Infof(ctx, "uc.Grant: user %s catalog item %s +%d = %d", userID, catalogItemID, input.Quantity, item.Quantity)
	return inventory.GrantOutput{Item: item}, nil
}
