package memstore

import (
	"context"

	"github.com/google/uuid"

	userModel "blog-backend/internal/domains/user/model"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(ctx context.Context, u *userModel.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return userModel.ErrUsernameTaken
		}
	}

	u.DateJoined = r.s.now()
	stored := *u
	r.s.users[u.ID] = &stored
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userModel.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, userModel.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*userModel.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, userModel.ErrUserNotFound
}

// Delete: follows(author_id) chặn xóa; posts, comments và follows(user_id) bị xóa theo
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return userModel.ErrUserNotFound
	}
	for _, f := range r.s.follows {
		if f.AuthorID == id {
			return userModel.ErrUserIsFollowed
		}
	}

	for postID, p := range r.s.posts {
		if p.AuthorID != id {
			continue
		}
		for commentID, c := range r.s.comments {
			if c.PostID == postID {
				delete(r.s.comments, commentID)
			}
		}
		delete(r.s.posts, postID)
	}
	for commentID, c := range r.s.comments {
		if c.AuthorID == id {
			delete(r.s.comments, commentID)
		}
	}
	for followID, f := range r.s.follows {
		if f.UserID == id {
			delete(r.s.follows, followID)
		}
	}

	delete(r.s.users, id)
	return nil
}
