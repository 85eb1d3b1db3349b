package httpserver

import (
	"context"

	catalogHTTP "play-economy/internal/catalog/delivery/http"
	catalogUC "play-economy/internal/catalog/usecase"

	"github.com/gin-gonic/gin"
)

// setupCatalogDomain wires repository -> use case -> handler and registers /api/v1/items.
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := catalogUC.New(srv.items, srv.publisher, srv.clock, srv.l)
	h := catalogHTTP.New(srv.l, uc)
	catalogHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
