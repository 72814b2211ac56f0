package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/group/model"
	"blog-backend/internal/domains/group/repository"
	"blog-backend/internal/shared/forms"
	"blog-backend/internal/shared/utils"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error)
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type groupService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &groupService{repo: repo}
}

// Create sinh slug từ title nếu slug bỏ trống
func (s *groupService) Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	req.Normalize()
	if req.Slug == "" {
		req.Slug = utils.GenerateSlug(req.Title)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g := &model.Group{Title: req.Title, Slug: req.Slug, Description: req.Description}
	if err := s.repo.Create(ctx, g); err != nil {
		if errors.Is(err, model.ErrSlugTaken) {
			return nil, forms.FieldError("slug", "Группа с таким slug уже существует.")
		}
		return nil, err
	}

	log.Info().Int64("group_id", g.ID).Str("slug", g.Slug).Msg("Group created")
	return g, nil
}

func (s *groupService) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *groupService) List(ctx context.Context) ([]*model.Group, error) {
	return s.repo.List(ctx)
}

func (s *groupService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}
	log.Info().Str("slug", slug).Msg("Group deleted")
	return nil
}
