package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

// RepositoryInterface định nghĩa data access cho users
type RepositoryInterface interface {
	// Create trả về ErrUsernameTaken nếu username đã tồn tại
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// Delete cascade posts/comments/follows của user,
	// trả về ErrUserIsFollowed nếu còn người follow user này
	Delete(ctx context.Context, id uuid.UUID) error
}
