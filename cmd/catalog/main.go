package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"play-economy/config"
	_ "play-economy/docs/catalog" // Swagger docs
	"play-economy/internal/event"
	"play-economy/internal/httpserver"
	"play-economy/internal/middleware"
	"play-economy/internal/model"
	"play-economy/internal/storage"
	"play-economy/pkg/kafka"
	"play-economy/pkg/log"
)

// @title       Catalog API
// @description Catalog item CRUD. Every change is announced to subscribers.
// @version     1
// @host        localhost:5000
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

	logger.Info(ctx, "Starting Catalog service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer backend.Close(context.Background())

	// 4. Event publisher
	if !cfg.KafkaEnabled() {
		logger.Error(ctx, "Catalog requires kafka.brokers and kafka.topic")
		return
	}
	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create Kafka producer: ", err)
		return
	}
	defer producer.Close()
	logger.Infof(ctx, "Publishing catalog events to %s", cfg.Kafka.Topic)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Service:     "catalog",
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		Ready:     backend.Ping,
		Items:     storage.Collection[model.Item](backend, model.CollectionItems),
		Publisher: event.NewKafkaPublisher(producer, logger),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
