package memstore

import (
	"context"
	"sort"

	commentModel "blog-backend/internal/domains/comment/model"
	postModel "blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
)

type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) Create(ctx context.Context, c *commentModel.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[c.PostID]; !ok {
		return postModel.ErrPostNotFound
	}
	if _, ok := r.s.users[c.AuthorID]; !ok {
		return userModel.ErrUserNotFound
	}

	r.s.nextCommentID++
	c.ID = r.s.nextCommentID
	c.Created = r.s.now()

	stored := *c
	r.s.comments[c.ID] = &stored
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*commentModel.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := make([]*commentModel.Comment, 0)
	for _, c := range r.s.comments {
		if c.PostID != postID {
			continue
		}
		out := *c
		if u, ok := r.s.users[c.AuthorID]; ok {
			out.Author = u.AsAuthor()
		}
		comments = append(comments, &out)
	}

	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].Created.Equal(comments[j].Created) {
			return comments[i].Created.Before(comments[j].Created)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}
