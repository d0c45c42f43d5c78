package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"filesmanager/internal/app"
	"filesmanager/internal/config"
	"filesmanager/internal/logger"
	"filesmanager/internal/queue"
	"filesmanager/internal/worker"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("worker failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	srv := worker.NewServer(queue.RedisOpt(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), cfg.WorkerConcurrency)
	mux := worker.NewServeMux(worker.NewThumbnailWorker(a.Store.Files, a.Storage))

	slog.Info("worker starting", "concurrency", cfg.WorkerConcurrency, "queue", queue.TypeThumbnail)
	// Run blocks until SIGTERM or SIGINT.
	return srv.Run(mux)
}
