package memstore

import (
	"context"

	"github.com/google/uuid"

	followModel "blog-backend/internal/domains/follow/model"
	userModel "blog-backend/internal/domains/user/model"
)

type FollowRepository struct {
	s *Store
}

// GetOrCreate kiểm tra và tạo trong cùng một lock nên không sinh edge trùng
func (r *FollowRepository) GetOrCreate(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	if userID == authorID {
		return false, followModel.ErrSelfFollow
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return false, userModel.ErrUserNotFound
	}
	if _, ok := r.s.users[authorID]; !ok {
		return false, userModel.ErrUserNotFound
	}
	if r.s.isFollowing(userID, authorID) {
		return false, nil
	}

	r.s.nextFollowID++
	r.s.follows[r.s.nextFollowID] = &followModel.Follow{
		ID:       r.s.nextFollowID,
		UserID:   userID,
		AuthorID: authorID,
	}
	return true, nil
}

func (r *FollowRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, f := range r.s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			delete(r.s.follows, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *FollowRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.isFollowing(userID, authorID), nil
}

func (r *FollowRepository) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, f := range r.s.follows {
		if f.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, f := range r.s.follows {
		if f.UserID == userID {
			n++
		}
	}
	return n, nil
}
