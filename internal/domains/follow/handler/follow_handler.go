package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/follow/service"
	postModel "blog-backend/internal/domains/post/model"
	postService "blog-backend/internal/domains/post/service"
	userModel "blog-backend/internal/domains/user/model"
	userService "blog-backend/internal/domains/user/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

// =====================================================
// FOLLOW HANDLER
// =====================================================

type FollowHandler struct {
	follows service.ServiceInterface
	users   userService.ServiceInterface
	posts   postService.ServiceInterface
}

func NewFollowHandler(
	follows service.ServiceInterface,
	users userService.ServiceInterface,
	posts postService.ServiceInterface,
) *FollowHandler {
	return &FollowHandler{follows: follows, users: users, posts: posts}
}

// Feed lists posts of every author the current user follows
// GET /follow/?page=
func (h *FollowHandler) Feed(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	page, err := h.posts.List(c.Request.Context(), postModel.Filter{FollowerID: &viewer.ID}, c.Query("page"))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "follow.html", gin.H{"page": page})
}

// Follow
// GET|POST /:username/follow/
func (h *FollowHandler) Follow(c *gin.Context) {
	author, ok := h.loadAuthor(c)
	if !ok {
		return
	}

	if err := h.follows.Follow(c.Request.Context(), middleware.CurrentUser(c), author); err != nil {
		response.ServerError(c, err)
		return
	}
	response.Redirect(c, "/"+author.Username+"/")
}

// Unfollow
// GET|POST /:username/unfollow/
func (h *FollowHandler) Unfollow(c *gin.Context) {
	author, ok := h.loadAuthor(c)
	if !ok {
		return
	}

	if err := h.follows.Unfollow(c.Request.Context(), middleware.CurrentUser(c), author); err != nil {
		response.ServerError(c, err)
		return
	}
	response.Redirect(c, "/"+author.Username+"/")
}

func (h *FollowHandler) loadAuthor(c *gin.Context) (*userModel.User, bool) {
	author, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			response.NotFound(c)
			return nil, false
		}
		response.ServerError(c, err)
		return nil, false
	}
	return author, true
}
