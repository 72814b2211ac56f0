package repository

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

type RepositoryInterface interface {
	// Create set ID và PubDate cho post
	Create(ctx context.Context, post *model.Post) error
	// Update ghi đè text, group, image, image_thumb
	Update(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id int64) (*model.Post, error)

	Count(ctx context.Context, filter model.Filter) (int, error)
	// List trả về posts theo pub_date DESC, id DESC
	List(ctx context.Context, filter model.Filter, limit, offset int) ([]*model.Post, error)

	// SetThumbnail chỉ ghi khi image hiện tại vẫn là imageKey; updated=false nếu ảnh đã đổi
	SetThumbnail(ctx context.Context, id int64, imageKey, thumbKey string) (updated bool, err error)
	ListMissingThumbnails(ctx context.Context, limit int) ([]*model.Post, error)
}
