package model

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-backend/internal/shared/forms"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

// ReservedUsernames không được dùng vì trùng với route cố định
var ReservedUsernames = map[string]bool{
	"new":    true,
	"follow": true,
	"group":  true,
	"auth":   true,
	"media":  true,
	"api":    true,
	"admin":  true,
	"static": true,
}

// SignupForm - POST /auth/signup/
type SignupForm struct {
	Username  string `json:"username" form:"username"`
	Email     string `json:"email" form:"email"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

// Normalize trim các field text, password giữ nguyên
func (f *SignupForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username,
			forms.Required,
			forms.MaxLength(150),
			validation.Match(usernamePattern).Error(MsgInvalidUsername),
			validation.By(notReserved),
		),
		validation.Field(&f.Email,
			is.EmailFormat.Error(MsgInvalidEmail),
			forms.MaxLength(254),
		),
		validation.Field(&f.FirstName, forms.MaxLength(150)),
		validation.Field(&f.LastName, forms.MaxLength(150)),
		validation.Field(&f.Password1,
			forms.Required,
			validation.RuneLength(8, 128).Error(MsgPasswordTooShort),
		),
		validation.Field(&f.Password2,
			forms.Required,
			validation.By(func(value interface{}) error {
				if value.(string) != f.Password1 {
					return errors.New(MsgPasswordMismatch)
				}
				return nil
			}),
		),
	)
}

func notReserved(value interface{}) error {
	s, _ := value.(string)
	if ReservedUsernames[strings.ToLower(s)] {
		return errors.New(MsgReservedUsername)
	}
	return nil
}

// LoginForm - POST /auth/login/
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, forms.Required),
		validation.Field(&f.Password, forms.Required),
	)
}
