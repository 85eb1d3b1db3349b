package usecase

import (
	"play-economy/internal/model"
	"play-economy/pkg/clock"
	"play-economy/pkg/log"
	"play-economy/pkg/repository"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	items        repository.Repository[model.InventoryItem]
	catalogItems repository.Repository[model.CatalogItem]
	clock        clock.Clock
	l            log.Logger
}

// New creates a new inventory UseCase implementation. catalogItems is the read-only mirror
// maintained by the projector.
func New(items repository.Repository[model.InventoryItem], catalogItems repository.Repository[model.CatalogItem], clk clock.Clock, l log.Logger) *implUseCase {
	return &implUseCase{
		items:        items,
		catalogItems: catalogItems,
		clock:        clk,
		l:            l,
	}
}
