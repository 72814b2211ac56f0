package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared"
)

// Client enqueues background tasks consumed by cmd/worker
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// NewThumbnailTask tạo task build thumbnail cho ảnh của post
func NewThumbnailTask(postID int64, imageKey string) (*asynq.Task, error) {
	payload, err := json.Marshal(shared.ThumbnailPayload{PostID: postID, ImageKey: imageKey})
	if err != nil {
		return nil, fmt.Errorf("marshal thumbnail payload: %w", err)
	}
	return asynq.NewTask(shared.TypePostImageThumbnail, payload), nil
}

// EnqueueThumbnail đẩy task vào queue default, retry tối đa 3 lần
func (c *Client) EnqueueThumbnail(ctx context.Context, postID int64, imageKey string) error {
	task, err := NewThumbnailTask(postID, imageKey)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue thumbnail task: %w", err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Int64("post_id", postID).
		Msg("Thumbnail task enqueued")
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
