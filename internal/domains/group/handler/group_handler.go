package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/group/model"
	"blog-backend/internal/domains/group/service"
	postModel "blog-backend/internal/domains/post/model"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared/response"
)

type GroupHandler struct {
	groups service.ServiceInterface
	posts  postService.ServiceInterface
}

func NewGroupHandler(groups service.ServiceInterface, posts postService.ServiceInterface) *GroupHandler {
	return &GroupHandler{groups: groups, posts: posts}
}

// GroupPosts lists the posts of one group, newest first
// GET /group/:slug/?page=
func (h *GroupHandler) GroupPosts(c *gin.Context) {
	ctx := c.Request.Context()

	group, err := h.groups.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c, err)
		return
	}

	page, err := h.posts.List(ctx, postModel.Filter{GroupID: &group.ID}, c.Query("page"))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "group.html", gin.H{
		"group": group,
		"page":  page,
	})
}
