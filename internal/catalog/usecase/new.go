package usecase

import (
	"play-economy/internal/event"
	"play-economy/internal/model"
	"play-economy/pkg/clock"
	"play-economy/pkg/log"
	"play-economy/pkg/repository"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo      repository.Repository[model.Item]
	publisher event.Publisher
	clock     clock.Clock
	l         log.Logger
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository[model.Item], publisher event.Publisher, clk clock.Clock, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		clock:     clk,
		l:         l,
	}
}
