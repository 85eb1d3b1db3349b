package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"play-economy/internal/catalog"
	"play-economy/internal/model"
)

func validateItem(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", catalog.ErrInvalidItem)
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price must be a non-negative number", catalog.ErrInvalidItem)
	}
	return nil
}

// parseID accepts any spelling uuid.Parse does and returns the canonical lowercase form
// item ids are stored under.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", catalog.ErrInvalidID, id)
	}
	return parsed.String(), nil
}

// publish announces a change that is already persisted.
func (uc *implUseCase) publish(ctx context.Context, e model.Event) error {
	if err := uc.publisher.Publish(ctx, e); err != nil {
		uc.l.Errorf(ctx, "uc.publish %s %s: %v", e.EventType(), e.EntityID(), err)
		return fmt.Errorf("%w: %w", catalog.ErrPublishFailed, err)
	}
	return nil
}
