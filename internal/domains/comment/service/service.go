package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/repository"
	postModel "blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Add validate form rồi lưu comment của author vào post
	Add(ctx context.Context, author *userModel.User, post *postModel.Post, form model.CommentForm) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}

type commentService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &commentService{repo: repo}
}

func (s *commentService) Add(ctx context.Context, author *userModel.User, post *postModel.Post, form model.CommentForm) (*model.Comment, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	c := &model.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Author:   author.AsAuthor(),
		Text:     form.Text,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	log.Info().
		Int64("comment_id", c.ID).
		Int64("post_id", post.ID).
		Str("author", author.Username).
		Msg("Comment added")
	return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}
