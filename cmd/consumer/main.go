package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"play-economy/config"
	"play-economy/internal/metrics"
	"play-economy/internal/model"
	projectorKafka "play-economy/internal/projector/delivery/kafka"
	projectorUC "play-economy/internal/projector/usecase"
	"play-economy/internal/storage"
	"play-economy/pkg/catalogclient"
	"play-economy/pkg/kafka"
	"play-economy/pkg/log"
)

// main is the entry point for the inventory background consumer.
// It keeps Inventory's catalog mirror in step with catalog events.
//
// Pattern:
//  1. Initialize infra (same as the HTTP services)
//  2. Create the projector UseCase
//  3. Resync the mirror from the Catalog API when configured
//  4. Consume catalog events until shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	// Infrastructure
	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer backend.Close(context.Background())

	if !cfg.KafkaEnabled() {
		logger.Error(ctx, "Consumer requires kafka.brokers and kafka.topic")
		return
	}
	reader, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create Kafka consumer: ", err)
		return
	}
	defer reader.Close()

	// Optional Catalog client for startup resync
	var catalog catalogclient.Client
	if cfg.Catalog.URL != "" {
		catalog, err = catalogclient.New(catalogclient.Config{
			BaseURL:       cfg.Catalog.URL,
			Timeout:       cfg.Catalog.Timeout,
			OnStateChange: metrics.ObserveBreakerState,
		})
		if err != nil {
			logger.Warnf(ctx, "Catalog client not available (optional): %v", err)
			catalog = nil
		}
	}

	mirror := storage.Collection[model.CatalogItem](backend, model.CollectionCatalogItems)
	uc := projectorUC.New(mirror, catalog, logger)

	if catalog != nil {
		if _, err := uc.Resync(ctx); err != nil {
			logger.Warnf(ctx, "Catalog resync failed, continuing with events only: %v", err)
		}
	}

	go serveMetrics(ctx, cfg.HTTPServer.Port, logger)

	consumer := projectorKafka.New(reader, uc, logger)
	logger.Infof(ctx, "Consumer service running on topic %s, group %s", cfg.Kafka.Topic, cfg.Kafka.GroupID)
	if err := consumer.Run(ctx); err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}

// serveMetrics exposes /metrics until ctx ends.
func serveMetrics(ctx context.Context, port int, logger log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Warnf(ctx, "Metrics endpoint unavailable: %v", err)
	}
}
