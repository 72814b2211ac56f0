package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	"blog-backend/internal/domains/post/job"
	"blog-backend/internal/infrastructure/queue"
	"blog-backend/internal/shared"
	"blog-backend/pkg/container"
)

// HandlerRegistry giữ các task handlers của worker
type HandlerRegistry struct {
	Thumbnail *job.ThumbnailHandler
	Backfill  *job.BackfillHandler
}

func newHandlerRegistry(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		Thumbnail: job.NewThumbnailHandler(c.PostService),
		Backfill:  job.NewBackfillHandler(c.PostService),
	}
}

// RegisterHandlers map task type → handler
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypePostImageThumbnail, r.Thumbnail)
	mux.Handle(shared.TypePostImageBackfill, r.Backfill)

	log.Info().
		Strs("types", []string{shared.TypePostImageThumbnail, shared.TypePostImageBackfill}).
		Msg("[Worker] Handlers registered")
}

// setupAsynqServer tạo asynq server và chạy nó trong goroutine riêng
func setupAsynqServer(cfg *config.Config, handlers *HandlerRegistry) *asynq.Server {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueDefault: 10,
				shared.QueueLow:     2,
			},
			Concurrency: cfg.Queue.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("[Asynq] ❌ Task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] Failed")
		}
	}()

	return srv
}

func setupScheduler(cfg *config.Config) (*queue.Scheduler, error) {
	scheduler := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := scheduler.RegisterJobs(); err != nil {
		return nil, err
	}

	// Start không block, Shutdown dừng các goroutine của scheduler
	if err := scheduler.Start(); err != nil {
		return nil, err
	}
	return scheduler, nil
}
