package repository

import (
	"context"

	"blog-backend/internal/domains/group/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, id int64) (*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
	// DeleteBySlug: posts của group giữ nguyên với group = NULL
	DeleteBySlug(ctx context.Context, slug string) error
}
