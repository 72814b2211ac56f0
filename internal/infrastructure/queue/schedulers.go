package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared"
)

const (
	BackfillCronSpec = "@every 30m"
	backfillLimit    = 100
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, password string, db int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs đăng ký các periodic tasks
func (s *Scheduler) RegisterJobs() error {
	return s.registerThumbnailBackfillJob()
}

// ================================================
// Thumbnail backfill (mỗi 30 phút)
// Bắt lại các post có ảnh nhưng task thumbnail đã fail hết retry
// ================================================
func (s *Scheduler) registerThumbnailBackfillJob() error {
	payload, err := json.Marshal(shared.BackfillPayload{Limit: backfillLimit})
	if err != nil {
		return fmt.Errorf("marshal backfill payload: %w", err)
	}

	task := asynq.NewTask(shared.TypePostImageBackfill, payload)
	entryID, err := s.scheduler.Register(BackfillCronSpec, task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
	)
	if err != nil {
		return fmt.Errorf("register thumbnail backfill: %w", err)
	}

	log.Info().
		Str("entry_id", entryID).
		Str("schedule", BackfillCronSpec).
		Msg("[Scheduler] Registered thumbnail backfill")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
