package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/repository"
	"blog-backend/internal/shared/forms"
)

// ServiceInterface định nghĩa business logic cho users và authentication
type ServiceInterface interface {
	Signup(ctx context.Context, form model.SignupForm) (*model.User, error)
	Authenticate(ctx context.Context, form model.LoginForm) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type userService struct {
	repo     repository.RepositoryInterface
	hashCost int
}

// NewService: hashCost thường là bcrypt.DefaultCost, tests dùng bcrypt.MinCost
func NewService(repo repository.RepositoryInterface, hashCost int) ServiceInterface {
	if hashCost < bcrypt.MinCost {
		hashCost = bcrypt.DefaultCost
	}
	return &userService{repo: repo, hashCost: hashCost}
}

func (s *userService) Signup(ctx context.Context, form model.SignupForm) (*model.User, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.New(),
		Username:     form.Username,
		Email:        form.Email,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, forms.FieldError("username", model.MsgUsernameTaken)
		}
		return nil, err
	}

	log.Info().Str("user_id", u.ID.String()).Str("username", u.Username).Msg("User signed up")
	return u, nil
}

// Authenticate trả về ErrInvalidCredentials cho cả username sai, password sai và user inactive
func (s *userService) Authenticate(ctx context.Context, form model.LoginForm) (*model.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(form.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, model.ErrInvalidCredentials
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) DeleteByUsername(ctx context.Context, username string) error {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, u.ID); err != nil {
		return err
	}

	log.Info().Str("user_id", u.ID.String()).Str("username", username).Msg("User deleted")
	return nil
}
