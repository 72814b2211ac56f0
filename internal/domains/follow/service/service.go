package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/follow/model"
	"blog-backend/internal/domains/follow/repository"
	userModel "blog-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Follow là get-or-create; follow chính mình là no-op
	Follow(ctx context.Context, user, author *userModel.User) error
	// Unfollow xóa edge nếu có, ngược lại là no-op
	Unfollow(ctx context.Context, user, author *userModel.User) error
	IsFollowing(ctx context.Context, user, author *userModel.User) (bool, error)
	Stats(ctx context.Context, author *userModel.User) (*model.Stats, error)
}

type followService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &followService{repo: repo}
}

func (s *followService) Follow(ctx context.Context, user, author *userModel.User) error {
	if user.ID == author.ID {
		return nil
	}

	created, err := s.repo.GetOrCreate(ctx, user.ID, author.ID)
	if err != nil {
		return err
	}

	if created {
		log.Info().Str("user", user.Username).Str("author", author.Username).Msg("Follow created")
	}
	return nil
}

func (s *followService) Unfollow(ctx context.Context, user, author *userModel.User) error {
	deleted, err := s.repo.Delete(ctx, user.ID, author.ID)
	if err != nil {
		return err
	}

	if deleted {
		log.Info().Str("user", user.Username).Str("author", author.Username).Msg("Follow removed")
	}
	return nil
}

func (s *followService) IsFollowing(ctx context.Context, user, author *userModel.User) (bool, error) {
	if user == nil || user.ID == author.ID {
		return false, nil
	}
	return s.repo.Exists(ctx, user.ID, author.ID)
}

func (s *followService) Stats(ctx context.Context, author *userModel.User) (*model.Stats, error) {
	followers, err := s.repo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.repo.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return &model.Stats{Followers: followers, Following: following}, nil
}
