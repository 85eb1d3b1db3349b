package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"play-economy/config"
	_ "play-economy/docs/inventory" // Swagger docs
	"play-economy/internal/httpserver"
	"play-economy/internal/middleware"
	"play-economy/internal/model"
	"play-economy/internal/storage"
	"play-economy/pkg/log"
)

// @title       Inventory API
// @description Per-user inventory: grant items and list holdings.
// @version     1
// @host        localhost:5005
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer backend.Close(context.Background())

	// One InventoryItem per (userId, catalogItemId).
	if err := backend.EnsureUniqueIndex(ctx, model.CollectionInventoryItems, model.FieldUserID, model.FieldCatalogItemID); err != nil {
		logger.Error(ctx, "Failed to create inventory index: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Service:     "inventory",
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		Ready:          backend.Ping,
		InventoryItems: storage.Collection[model.InventoryItem](backend, model.CollectionInventoryItems),
		CatalogItems:   storage.Collection[model.CatalogItem](backend, model.CollectionCatalogItems),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
