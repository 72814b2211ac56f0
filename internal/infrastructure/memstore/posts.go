package memstore

import (
	"context"
	"sort"

	postModel "blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
)

type PostRepository struct {
	s *Store
}

func (r *PostRepository) Create(ctx context.Context, p *postModel.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[p.AuthorID]; !ok {
		return userModel.ErrUserNotFound
	}

	r.s.nextPostID++
	p.ID = r.s.nextPostID
	p.PubDate = r.s.now()

	r.s.posts[p.ID] = &postModel.Post{
		ID:         p.ID,
		Text:       p.Text,
		PubDate:    p.PubDate,
		AuthorID:   p.AuthorID,
		GroupID:    copyInt64(p.GroupID),
		Image:      copyString(p.Image),
		ImageThumb: copyString(p.ImageThumb),
	}
	return nil
}

func (r *PostRepository) Update(ctx context.Context, p *postModel.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[p.ID]
	if !ok {
		return postModel.ErrPostNotFound
	}

	stored.Text = p.Text
	stored.GroupID = copyInt64(p.GroupID)
	stored.Image = copyString(p.Image)
	stored.ImageThumb = copyString(p.ImageThumb)
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*postModel.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, postModel.ErrPostNotFound
	}
	return r.s.hydratePost(p), nil
}

func (r *PostRepository) Count(ctx context.Context, f postModel.Filter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := 0
	for _, p := range r.s.posts {
		if r.s.matchPost(p, f) {
			total++
		}
	}
	return total, nil
}

func (r *PostRepository) List(ctx context.Context, f postModel.Filter, limit, offset int) ([]*postModel.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]*postModel.Post, 0)
	for _, p := range r.s.posts {
		if r.s.matchPost(p, f) {
			matched = append(matched, p)
		}
	}
	sortPosts(matched)

	if offset >= len(matched) {
		return []*postModel.Post{}, nil
	}
	end := len(matched)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}

	posts := make([]*postModel.Post, 0, end-offset)
	for _, p := range matched[offset:end] {
		posts = append(posts, r.s.hydratePost(p))
	}
	return posts, nil
}

func (r *PostRepository) SetThumbnail(ctx context.Context, id int64, imageKey, thumbKey string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok || p.Image == nil || *p.Image != imageKey {
		return false, nil
	}
	p.ImageThumb = &thumbKey
	return true, nil
}

func (r *PostRepository) ListMissingThumbnails(ctx context.Context, limit int) ([]*postModel.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	missing := make([]*postModel.Post, 0)
	for _, p := range r.s.posts {
		if p.HasImage() && p.ImageThumb == nil {
			missing = append(missing, p)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].ID < missing[j].ID })
	if limit >= 0 && len(missing) > limit {
		missing = missing[:limit]
	}

	posts := make([]*postModel.Post, 0, len(missing))
	for _, p := range missing {
		posts = append(posts, r.s.hydratePost(p))
	}
	return posts, nil
}
