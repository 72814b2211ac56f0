package utils

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// ParseID parse path param thành int64 dương, ok=false nếu không hợp lệ
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// SafeRedirect chỉ chấp nhận đường dẫn nội bộ ("/..."), còn lại trả về fallback
func SafeRedirect(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return next
}

// LoginURL trả về trang login kèm ?next=
func LoginURL(next string) string {
	return "/auth/login/?next=" + url.QueryEscape(next)
}
