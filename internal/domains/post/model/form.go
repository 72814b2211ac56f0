package model

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/forms"
)

// UploadedImage là file ảnh nhận từ multipart form
type UploadedImage struct {
	Filename string
	Data     []byte
}

// PostForm - /new/ và /{username}/{post_id}/edit/
// Group giữ nguyên giá trị thô của <select> để render lại form khi có lỗi.
type PostForm struct {
	Text       string         `json:"text"`
	Group      string         `json:"group"`
	Image      *UploadedImage `json:"image"`
	ClearImage bool           `json:"-"`
}

func (f *PostForm) Normalize() {
	f.Text = strings.TrimSpace(f.Text)
	f.Group = strings.TrimSpace(f.Group)
}

// Validate chỉ kiểm tra các field không cần truy cập DB/storage
func (f PostForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text, forms.Required),
	)
}

// FormFromPost dựng form ban đầu cho trang edit
func FormFromPost(p *Post) PostForm {
	f := PostForm{Text: p.Text}
	if p.GroupID != nil {
		f.Group = strconv.FormatInt(*p.GroupID, 10)
	}
	return f
}
