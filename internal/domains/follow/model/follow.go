package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrSelfFollow = errors.New("users cannot follow themselves")

// Follow là cạnh có hướng: UserID (follower) → AuthorID (được follow).
// Mỗi cặp (UserID, AuthorID) tồn tại tối đa một lần.
type Follow struct {
	ID       int64
	UserID   uuid.UUID
	AuthorID uuid.UUID
}

// Stats hiển thị trên trang profile
type Stats struct {
	Followers int
	Following int
}
