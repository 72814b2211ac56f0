package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/jwt"
)

// SessionCookie chứa JWT session do /auth/login/ cấp
const SessionCookie = "sessionid"

// UserLoader được implement bởi user service
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userModel.User, error)
}

// Authenticate resolve cookie session thành user và gắn vào context.
// Cookie thiếu, hết hạn hoặc user không còn active: request chạy như anonymous.
func Authenticate(tokens *jwt.Manager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateSessionToken(raw)
		if err != nil {
			log.Debug().Err(err).Msg("Ignoring invalid session cookie")
			c.Next()
			return
		}

		userID := utils.ParseStringToUUID(claims.UserID)
		if userID == uuid.Nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || !user.IsActive {
			c.Next()
			return
		}

		c.Set(shared.ContextUserKey, user)
		c.Next()
	}
}

// LoginRequired chuyển anonymous về trang login kèm ?next=<url hiện tại>
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			response.Redirect(c, utils.LoginURL(c.Request.URL.RequestURI()))
			return
		}
		c.Next()
	}
}

// CurrentUser trả về user đã đăng nhập hoặc nil
func CurrentUser(c *gin.Context) *userModel.User {
	v, ok := c.Get(shared.ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*userModel.User)
	return user
}
