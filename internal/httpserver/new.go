package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"play-economy/internal/event"
	"play-economy/internal/middleware"
	"play-economy/internal/model"
	"play-economy/pkg/clock"
	"play-economy/pkg/log"
	"play-economy/pkg/repository"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	service     string
	mw          middleware.Middleware
	clock       clock.Clock
	ready       func(ctx context.Context) error

	// Catalog domain
	items     repository.Repository[model.Item]
	publisher event.Publisher

	// Inventory domain
	inventoryItems repository.Repository[model.InventoryItem]
	catalogItems   repository.Repository[model.CatalogItem]
}

// Config is the dependency bag passed to New(). A server hosts either the catalog
// domain (Items + Publisher) or the inventory domain (InventoryItems + CatalogItems).
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Service     string
	RateLimit   middleware.Config
	Clock       clock.Clock

	// Ready, when set, gates the /ready route.
	Ready func(ctx context.Context) error

	// Catalog domain
	Items     repository.Repository[model.Item]
	Publisher event.Publisher

	// Inventory domain
	InventoryItems repository.Repository[model.InventoryItem]
	CatalogItems   repository.Repository[model.CatalogItem]
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}
	mwCfg := cfg.RateLimit
	mwCfg.Service = cfg.Service

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		service:        cfg.Service,
		clock:          clk,
		ready:          cfg.Ready,
		items:          cfg.Items,
		publisher:      cfg.Publisher,
		inventoryItems: cfg.InventoryItems,
		catalogItems:   cfg.CatalogItems,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mw = middleware.New(logger, mwCfg)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.service == "" {
		return errors.New("service is required")
	}

	catalog := srv.items != nil || srv.publisher != nil
	inventory := srv.inventoryItems != nil || srv.catalogItems != nil
	switch {
	case catalog && inventory:
		return errors.New("catalog and inventory domains cannot share a server")
	case catalog && (srv.items == nil || srv.publisher == nil):
		return errors.New("catalog domain requires items repository and publisher")
	case inventory && (srv.inventoryItems == nil || srv.catalogItems == nil):
		return errors.New("inventory domain requires inventory and catalog item repositories")
	case !catalog && !inventory:
		return errors.New("no domain configured")
	}
	return nil
}
