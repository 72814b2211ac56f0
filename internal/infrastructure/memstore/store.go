// Package memstore giữ toàn bộ dữ liệu blog trong RAM (STORAGE_TYPE=memory).
// Các repo con chia sẻ một Store nên cascade/protect giữa các bảng
// được xử lý giống foreign key trong Postgres.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	commentModel "blog-backend/internal/domains/comment/model"
	followModel "blog-backend/internal/domains/follow/model"
	groupModel "blog-backend/internal/domains/group/model"
	postModel "blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users    map[uuid.UUID]*userModel.User
	groups   map[int64]*groupModel.Group
	posts    map[int64]*postModel.Post
	comments map[int64]*commentModel.Comment
	follows  map[int64]*followModel.Follow

	nextGroupID   int64
	nextPostID    int64
	nextCommentID int64
	nextFollowID  int64
}

func New() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[uuid.UUID]*userModel.User),
		groups:   make(map[int64]*groupModel.Group),
		posts:    make(map[int64]*postModel.Post),
		comments: make(map[int64]*commentModel.Comment),
		follows:  make(map[int64]*followModel.Follow),
	}
}

// SetClock thay nguồn thời gian cho pub_date/created/date_joined (dùng trong test)
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Groups() *GroupRepository     { return &GroupRepository{s: s} }
func (s *Store) Posts() *PostRepository       { return &PostRepository{s: s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }
func (s *Store) Follows() *FollowRepository   { return &FollowRepository{s: s} }

// =====================================================
// HYDRATION (caller giữ lock)
// =====================================================

// hydratePost trả về bản copy của post kèm author, group và số comment
func (s *Store) hydratePost(p *postModel.Post) *postModel.Post {
	out := *p
	if u, ok := s.users[p.AuthorID]; ok {
		out.Author = u.AsAuthor()
	}

	out.Group = nil
	if p.GroupID != nil {
		if g, ok := s.groups[*p.GroupID]; ok {
			out.Group = &postModel.GroupRef{ID: g.ID, Title: g.Title, Slug: g.Slug}
		}
	}

	out.CommentCount = 0
	for _, c := range s.comments {
		if c.PostID == p.ID {
			out.CommentCount++
		}
	}
	return &out
}

func (s *Store) isFollowing(userID, authorID uuid.UUID) bool {
	for _, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			return true
		}
	}
	return false
}

func (s *Store) matchPost(p *postModel.Post, f postModel.Filter) bool {
	if f.GroupID != nil && (p.GroupID == nil || *p.GroupID != *f.GroupID) {
		return false
	}
	if f.AuthorID != nil && p.AuthorID != *f.AuthorID {
		return false
	}
	if f.FollowerID != nil && !s.isFollowing(*f.FollowerID, p.AuthorID) {
		return false
	}
	return true
}

// sortPosts: pub_date DESC, id DESC
func sortPosts(posts []*postModel.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].ID > posts[j].ID
	})
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
