package repository

import (
	"context"

	"github.com/google/uuid"
)

type RepositoryInterface interface {
	// GetOrCreate tạo edge nếu chưa có; created=false khi edge đã tồn tại
	GetOrCreate(ctx context.Context, userID, authorID uuid.UUID) (created bool, err error)
	// Delete xóa edge nếu có; deleted=false khi không có gì để xóa
	Delete(ctx context.Context, userID, authorID uuid.UUID) (deleted bool, err error)
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}
