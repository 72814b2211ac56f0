package service

import (
	"context"
	"io"

	"blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/shared/pagination"
)

// ServiceInterface định nghĩa business logic cho posts
type ServiceInterface interface {
	// List resolve ?page= rồi trả về một trang 10 posts theo filter
	List(ctx context.Context, filter model.Filter, page string) (*pagination.Page[*model.Post], error)
	Count(ctx context.Context, filter model.Filter) (int, error)

	// GetForAuthor trả về ErrPostNotFound nếu post không tồn tại hoặc không thuộc username
	GetForAuthor(ctx context.Context, username string, id int64) (*model.Post, error)

	Create(ctx context.Context, author *userModel.User, form model.PostForm) (*model.Post, error)
	Update(ctx context.Context, editor *userModel.User, post *model.Post, form model.PostForm) (*model.Post, error)

	// Thumbnails (worker)
	GenerateThumbnail(ctx context.Context, postID int64, imageKey string) error
	BackfillThumbnails(ctx context.Context, limit int) (int, error)

	// Export ghi file xlsx các posts theo filter, trả về số dòng
	Export(ctx context.Context, filter model.Filter, w io.Writer) (int, error)
}

// ThumbnailEnqueuer được implement bởi queue.Client
type ThumbnailEnqueuer interface {
	EnqueueThumbnail(ctx context.Context, postID int64, imageKey string) error
}
