package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared"
)

// ThumbnailHandler build thumbnail cho ảnh vừa upload của post
type ThumbnailHandler struct {
	posts postService.ServiceInterface
}

func NewThumbnailHandler(posts postService.ServiceInterface) *ThumbnailHandler {
	return &ThumbnailHandler{posts: posts}
}

func (h *ThumbnailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ThumbnailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal thumbnail payload")
		// payload hỏng thì retry cũng vô ích
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	log.Info().
		Int64("post_id", payload.PostID).
		Str("image", payload.ImageKey).
		Msg("Building post thumbnail")

	if err := h.posts.GenerateThumbnail(ctx, payload.PostID, payload.ImageKey); err != nil {
		log.Error().Err(err).Int64("post_id", payload.PostID).Msg("Failed to build thumbnail")
		return fmt.Errorf("generate thumbnail: %w", err)
	}

	return nil
}

// BackfillHandler là periodic task quét các post còn thiếu thumbnail
type BackfillHandler struct {
	posts postService.ServiceInterface
}

func NewBackfillHandler(posts postService.ServiceInterface) *BackfillHandler {
	return &BackfillHandler{posts: posts}
}

func (h *BackfillHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	payload := shared.BackfillPayload{Limit: 100}
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	done, err := h.posts.BackfillThumbnails(ctx, payload.Limit)
	if err != nil {
		return fmt.Errorf("backfill thumbnails: %w", err)
	}

	log.Info().Int("thumbnails", done).Msg("Thumbnail backfill finished")
	return nil
}
