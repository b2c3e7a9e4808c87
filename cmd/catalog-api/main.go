package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mebella/catalog-api/internal/config"
	"github.com/mebella/catalog-api/internal/http"
	"github.com/mebella/catalog-api/internal/log"
	"github.com/mebella/catalog-api/internal/repository"
	"github.com/mebella/catalog-api/internal/service"
	"github.com/mebella/catalog-api/internal/storage/db"
	"github.com/mebella/catalog-api/internal/telemetry"
	"github.com/mebella/catalog-api/pkg/cmdutil"
	"github.com/mebella/catalog-api/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running catalog api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		HTTP  config.HTTP
		Mongo config.Mongo
		Otel  config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	// A missing or unreachable store must not crash the process; the API
	// keeps serving and reports the store as unavailable.
	store := db.Connect(ctx, cfg.Mongo, logger)
	defer func() {
		if err := store.Disconnect(ctx); err != nil {
			logger.ErrorContext(ctx, "error disconnecting from document store", slog.Any("error", err))
		}
	}()

	productRepository := repository.NewProductRepository(store)
	productService := service.NewProductService(productRepository)
	seeder := service.NewSeeder(logger, productRepository)

	seedResult := seeder.SeedIfEmpty(ctx)
	logger.InfoContext(ctx, "startup seeding finished",
		slog.Bool("seeded", seedResult.Seeded),
		slog.Int("inserted", seedResult.Inserted),
		slog.String("reason", seedResult.Reason),
	)

	svc := http.New(cfg.HTTP, logger, validator.NewDefaultValidator(), productService, seeder, store)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
