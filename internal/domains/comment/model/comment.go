package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/shared/forms"
)

const MaxTextLength = 500

// Comment thuộc về một post và một author, hiển thị theo created ASC
type Comment struct {
	ID       int64
	PostID   int64
	AuthorID uuid.UUID
	Author   userModel.Author
	Text     string
	Created  time.Time
}

// CommentForm - POST /{username}/{post_id}/comment
// Author và post lấy từ session và URL, không lấy từ form.
type CommentForm struct {
	Text string `json:"text" form:"text"`
}

func (f *CommentForm) Normalize() {
	f.Text = strings.TrimSpace(f.Text)
}

func (f CommentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text, forms.Required, forms.MaxLength(MaxTextLength)),
	)
}
