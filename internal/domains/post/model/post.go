package model

import (
	"time"

	"github.com/google/uuid"

	userModel "blog-backend/internal/domains/user/model"
)

// Object storage keys của ảnh post; /media/ chỉ phục vụ keys dưới ImageKeyPrefix
const (
	ImageKeyPrefix = "posts/"
	ThumbKeyPrefix = "posts/thumbs/"
)

// GroupRef là phần group được hiển thị cùng post
type GroupRef struct {
	ID    int64
	Title string
	Slug  string
}

// Post - bài viết, mặc định sắp xếp pub_date DESC, id DESC
type Post struct {
	ID         int64
	Text       string
	PubDate    time.Time
	AuthorID   uuid.UUID
	Author     userModel.Author
	GroupID    *int64
	Group      *GroupRef
	Image      *string // object key: posts/<uuid>.<ext>
	ImageThumb *string // posts/thumbs/<uuid>.jpg

	CommentCount int
}

// DisplayImage ưu tiên thumbnail, fallback về ảnh gốc
func (p *Post) DisplayImage() string {
	if p.ImageThumb != nil && *p.ImageThumb != "" {
		return *p.ImageThumb
	}
	if p.Image != nil {
		return *p.Image
	}
	return ""
}

func (p *Post) HasImage() bool {
	return p.Image != nil && *p.Image != ""
}

// Filter chọn tập posts cho các listing; các field nil bị bỏ qua
type Filter struct {
	GroupID    *int64
	AuthorID   *uuid.UUID
	FollowerID *uuid.UUID // posts của các author mà FollowerID đang follow
}
