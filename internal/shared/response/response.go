package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared"
)

// Response là envelope JSON cho các endpoint /api
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// ========================================
// HTML
// ========================================

// HTML render template name, tự thêm "user" (nil nếu anonymous) vào data
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		user, _ := c.Get(shared.ContextUserKey)
		data["user"] = user
	}
	c.HTML(status, name, data)
}

// Redirect luôn dùng 302 giống redirect() của form handlers
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "misc/404.html", gin.H{"path": c.Request.URL.Path})
	c.Abort()
}

// ServerError log lỗi kèm request id rồi render trang 500
func ServerError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString(shared.ContextRequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")

	HTML(c, http.StatusInternalServerError, "misc/500.html", nil)
	c.Abort()
}
