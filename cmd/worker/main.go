package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"jadwalkajian/backend/internal/config"
	"jadwalkajian/backend/internal/db"
	"jadwalkajian/backend/internal/geo"
	"jadwalkajian/backend/internal/logging"
	"jadwalkajian/backend/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("log error: %v", err)
	}
	defer func() {
		_ = cleanup()
	}()
	logger = logger.With("service", "worker")
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("db error", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.New(pool)
	resolver := geo.NewHTTPResolver(logger, geo.ResolverConfig{
		Timeout:      cfg.Resolver.Timeout,
		RateLimitRPS: cfg.Resolver.RateLimitRPS,
	})
	backfiller := geo.NewBackfiller(repo, geo.NewExtractor(resolver), logger)

	logger.Info("worker_started")
	for {
		results, err := backfiller.Run(ctx, cfg.Resolver.BackfillSize)
		if err != nil {
			logger.Error("backfill_error", "error", err)
			time.Sleep(30 * time.Second)
			continue
		}
		if len(results) == 0 {
			time.Sleep(5 * time.Minute)
			continue
		}

		filled := 0
		for _, result := range results {
			if result.OK {
				filled++
			}
		}
		logger.Info("backfill_batch_done", "total", len(results), "filled", filled)
		// Resolver already throttles per host, the pause spaces whole batches.
		time.Sleep(30 * time.Second)
	}
}
