// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[Config] Failed to load: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment)

	if cfg.IsMemory() || !cfg.Queue.Enabled {
		log.Fatal().Msg("[Worker] requires STORAGE_TYPE=postgres and QUEUE_ENABLED=true")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize container
	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[Container] Failed to initialize")
	}
	defer c.Cleanup()

	// Health check trước khi nhận task
	if err := checkDependencies(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("[Startup] Health check failed")
		return
	}

	srv := setupAsynqServer(cfg, newHandlerRegistry(c))
	scheduler, err := setupScheduler(cfg)
	if err != nil {
		srv.Shutdown()
		log.Error().Err(err).Msg("[Scheduler] Failed to start")
		return
	}

	log.Info().
		Int("concurrency", cfg.Queue.Concurrency).
		Msg("🚀 Blog worker started")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info().Msg("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] ✓ Stopped")
}
