package usecase

import (
	"play-economy/internal/model"
	"play-economy/pkg/catalogclient"
	"play-economy/pkg/log"
	"play-economy/pkg/repository"
)

// implUseCase is the private implementation of projector.UseCase.
type implUseCase struct {
	mirror  repository.Repository[model.CatalogItem]
	catalog catalogclient.Client
	l       log.Logger
}

// New creates a projector over mirror. catalog may be nil, which disables Resync.
func New(mirror repository.Repository[model.CatalogItem], catalog catalogclient.Client, l log.Logger) *implUseCase {
	return &implUseCase{
		mirror:  mirror,
		catalog: catalog,
		l:       l,
	}
}
