package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/service"
	postModel "blog-backend/internal/domains/post/model"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared/forms"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
)

type CommentHandler struct {
	comments service.ServiceInterface
	posts    postService.ServiceInterface
}

func NewCommentHandler(comments service.ServiceInterface, posts postService.ServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments, posts: posts}
}

// AddComment saves a comment and always returns to the post page.
// Invalid comments are dropped silently.
// GET|POST /:username/:post_id/comment
func (h *CommentHandler) AddComment(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("post_id"))
	if !ok {
		response.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	post, err := h.posts.GetForAuthor(ctx, c.Param("username"), id)
	if err != nil {
		if errors.Is(err, postModel.ErrPostNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c, err)
		return
	}
	detail := "/" + post.Author.Username + "/" + utils.FormatID(post.ID) + "/"

	if c.Request.Method != http.MethodPost {
		response.Redirect(c, detail)
		return
	}

	var form model.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		log.Debug().Err(err).Int64("post_id", post.ID).Msg("Could not bind comment form")
	}

	if _, err := h.comments.Add(ctx, middleware.CurrentUser(c), post, form); err != nil {
		switch {
		case forms.IsValidation(err):
			log.Debug().Err(err).Int64("post_id", post.ID).Msg("Rejected invalid comment")
		case errors.Is(err, postModel.ErrPostNotFound):
			response.NotFound(c)
			return
		default:
			response.ServerError(c, err)
			return
		}
	}

	response.Redirect(c, detail)
}
