package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User là tài khoản đăng nhập; username xuất hiện trong URL /{username}/
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsActive     bool
	DateJoined   time.Time
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AsAuthor trả về phần public của user để gắn vào post/comment
func (u *User) AsAuthor() Author {
	return Author{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Author là thông tin user hiển thị cạnh post và comment
type Author struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
}

func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// DisplayName: họ tên nếu có, ngược lại là username
func (a Author) DisplayName() string {
	if name := a.FullName(); name != "" {
		return name
	}
	return a.Username
}
