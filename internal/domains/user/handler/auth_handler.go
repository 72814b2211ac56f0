package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/service"
	"blog-backend/internal/shared/forms"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/jwt"
)

// nonFieldErrors là key cho lỗi không gắn với field nào (giống form.non_field_errors)
const nonFieldErrors = "__all__"

// =====================================================
// AUTH HANDLER
// =====================================================

type AuthHandler struct {
	users        service.ServiceInterface
	tokens       *jwt.Manager
	secureCookie bool
}

func NewAuthHandler(users service.ServiceInterface, tokens *jwt.Manager, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		users:        users,
		tokens:       tokens,
		secureCookie: secureCookie,
	}
}

// SignupPage renders the empty signup form
// GET /auth/signup/
func (h *AuthHandler) SignupPage(c *gin.Context) {
	response.HTML(c, http.StatusOK, "auth/signup.html", gin.H{
		"form":   model.SignupForm{},
		"errors": map[string]string{},
	})
}

// Signup creates the account, then sends the user to the login page
// POST /auth/signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var form model.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		response.HTML(c, http.StatusBadRequest, "auth/signup.html", gin.H{"form": form})
		return
	}

	if _, err := h.users.Signup(c.Request.Context(), form); err != nil {
		fields, ok := forms.FieldErrors(err)
		if !ok {
			response.ServerError(c, err)
			return
		}
		response.HTML(c, http.StatusOK, "auth/signup.html", gin.H{
			"form":   form,
			"errors": fields,
		})
		return
	}

	response.Redirect(c, "/auth/login/")
}

// LoginPage
// GET /auth/login/?next=
func (h *AuthHandler) LoginPage(c *gin.Context) {
	response.HTML(c, http.StatusOK, "auth/login.html", gin.H{
		"form":   model.LoginForm{},
		"errors": map[string]string{},
		"next":   c.Query("next"),
	})
}

// Login validates credentials and sets the session cookie
// POST /auth/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var form model.LoginForm
	_ = c.ShouldBind(&form)
	next := c.PostForm("next")

	user, err := h.users.Authenticate(c.Request.Context(), form)
	if err != nil {
		var fields map[string]string
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			fields = map[string]string{nonFieldErrors: model.MsgInvalidCredentials}
		case forms.IsValidation(err):
			fields, _ = forms.FieldErrors(err)
		default:
			response.ServerError(c, err)
			return
		}

		form.Password = ""
		response.HTML(c, http.StatusOK, "auth/login.html", gin.H{
			"form":   form,
			"errors": fields,
			"next":   next,
		})
		return
	}

	token, expires, err := h.tokens.GenerateSessionToken(user.ID.String(), user.Username)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.tokens.TTL().Seconds()), "/", "", h.secureCookie, true)

	log.Info().
		Str("username", user.Username).
		Time("expires", expires).
		Str("ip", utils.ExtractClientIP(c)).
		Msg("User logged in")

	response.Redirect(c, utils.SafeRedirect(next, "/"))
}

// Logout clears the session cookie
// GET|POST /auth/logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	response.Redirect(c, "/")
}
