package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/shared"
)

const RequestIDHeader = "X-Request-ID"

// RequestID giữ X-Request-ID của proxy nếu có, ngược lại sinh uuid mới
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}

		c.Set(shared.ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
