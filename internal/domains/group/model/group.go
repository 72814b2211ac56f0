package model

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/forms"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrSlugTaken     = errors.New("group slug already taken")
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Group là chủ đề mà post có thể thuộc về
type Group struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}

// CreateGroupRequest - blogctl group create
type CreateGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (r *CreateGroupRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, forms.Required, forms.MaxLength(200)),
		validation.Field(&r.Slug,
			forms.Required,
			forms.MaxLength(50),
			validation.Match(slugPattern).Error("Значение должно состоять только из латинских букв, цифр, знаков подчеркивания или дефиса."),
		),
	)
}
