package httpserver

import (
	"context"

	inventoryHTTP "play-economy/internal/inventory/delivery/http"
	inventoryUC "play-economy/internal/inventory/usecase"

	"github.com/gin-gonic/gin"
)

// setupInventoryDomain wires repositories -> use case -> handler and registers /api/v1/items.
func (srv HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := inventoryUC.New(srv.inventoryItems, srv.catalogItems, srv.clock, srv.l)
	h := inventoryHTTP.New(srv.l, uc)
	inventoryHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}
