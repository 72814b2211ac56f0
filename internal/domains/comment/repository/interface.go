package repository

import (
	"context"

	"blog-backend/internal/domains/comment/model"
)

type RepositoryInterface interface {
	// Create set ID và Created
	Create(ctx context.Context, comment *model.Comment) error
	// ListByPost trả về comments của post theo created ASC
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
