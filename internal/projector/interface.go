package projector

import (
	"context"

	"play-economy/internal/model"
)

// UseCase keeps the catalog mirror in step with catalog events.
type UseCase interface {
	// Apply projects one event onto the mirror. Applying the same event twice leaves
	// the mirror as applying it once.
	Apply(ctx context.Context, e model.Event) error
	// Resync replaces the mirror with the catalog's current items.
	Resync(ctx context.Context) (ResyncOutput, error)
}
