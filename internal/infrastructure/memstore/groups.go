package memstore

import (
	"context"
	"sort"

	groupModel "blog-backend/internal/domains/group/model"
)

type GroupRepository struct {
	s *Store
}

func (r *GroupRepository) Create(ctx context.Context, g *groupModel.Group) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.groups {
		if existing.Slug == g.Slug {
			return groupModel.ErrSlugTaken
		}
	}

	r.s.nextGroupID++
	g.ID = r.s.nextGroupID
	stored := *g
	r.s.groups[g.ID] = &stored
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id int64) (*groupModel.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.groups[id]
	if !ok {
		return nil, groupModel.ErrGroupNotFound
	}
	out := *g
	return &out, nil
}

func (r *GroupRepository) FindBySlug(ctx context.Context, slug string) (*groupModel.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, g := range r.s.groups {
		if g.Slug == slug {
			out := *g
			return &out, nil
		}
	}
	return nil, groupModel.ErrGroupNotFound
}

func (r *GroupRepository) List(ctx context.Context) ([]*groupModel.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	groups := make([]*groupModel.Group, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		out := *g
		groups = append(groups, &out)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Title != groups[j].Title {
			return groups[i].Title < groups[j].Title
		}
		return groups[i].ID < groups[j].ID
	})
	return groups, nil
}

// DeleteBySlug giữ lại posts của group, chỉ bỏ liên kết (ON DELETE SET NULL)
func (r *GroupRepository) DeleteBySlug(ctx context.Context, slug string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, g := range r.s.groups {
		if g.Slug != slug {
			continue
		}
		for _, p := range r.s.posts {
			if p.GroupID != nil && *p.GroupID == id {
				p.GroupID = nil
			}
		}
		delete(r.s.groups, id)
		return nil
	}
	return groupModel.ErrGroupNotFound
}
