package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	commentModel "blog-backend/internal/domains/comment/model"
	commentService "blog-backend/internal/domains/comment/service"
	followService "blog-backend/internal/domains/follow/service"
	groupService "blog-backend/internal/domains/group/service"
	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/service"
	userModel "blog-backend/internal/domains/user/model"
	userService "blog-backend/internal/domains/user/service"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/forms"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	posts    service.ServiceInterface
	users    userService.ServiceInterface
	groups   groupService.ServiceInterface
	comments commentService.ServiceInterface
	follows  followService.ServiceInterface
}

func NewPostHandler(
	posts service.ServiceInterface,
	users userService.ServiceInterface,
	groups groupService.ServiceInterface,
	comments commentService.ServiceInterface,
	follows followService.ServiceInterface,
) *PostHandler {
	return &PostHandler{
		posts:    posts,
		users:    users,
		groups:   groups,
		comments: comments,
		follows:  follows,
	}
}

var (
	newPostLabels  = gin.H{"title": "Добавить запись", "button": "Добавить"}
	editPostLabels = gin.H{"title": "Редактировать запись", "button": "Сохранить"}
)

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func postURL(username string, id int64) string {
	return "/" + username + "/" + utils.FormatID(id) + "/"
}

// handleError: not-found sentinels → 404, còn lại → 500
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPostNotFound), errors.Is(err, userModel.ErrUserNotFound):
		response.NotFound(c)
	default:
		response.ServerError(c, err)
	}
}

// loadPost resolve /:username/:post_id/, ok=false khi đã ghi response
func (h *PostHandler) loadPost(c *gin.Context) (*model.Post, bool) {
	id, valid := utils.ParseID(c.Param("post_id"))
	if !valid {
		response.NotFound(c)
		return nil, false
	}

	post, err := h.posts.GetForAuthor(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		handleError(c, err)
		return nil, false
	}
	return post, true
}

// readPostForm đọc multipart/urlencoded form; file ảnh bị cắt ở MaxImageSize+1
// để service vẫn nhận ra file quá lớn
func readPostForm(c *gin.Context) (model.PostForm, error) {
	form := model.PostForm{
		Text:       c.PostForm("text"),
		Group:      c.PostForm("group"),
		ClearImage: c.PostForm("image-clear") != "",
	}

	fh, err := c.FormFile("image")
	if err != nil {
		// không có file hoặc form không phải multipart
		return form, nil
	}

	f, err := fh.Open()
	if err != nil {
		return form, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxImageSize+1))
	if err != nil {
		return form, err
	}
	if len(data) > 0 {
		form.Image = &model.UploadedImage{Filename: fh.Filename, Data: data}
	}
	return form, nil
}

// authorCard là phần profile hiển thị trên /:username/ và trang post
func (h *PostHandler) authorCard(ctx context.Context, viewer, author *userModel.User) (gin.H, error) {
	stats, err := h.follows.Stats(ctx, author)
	if err != nil {
		return nil, err
	}

	count, err := h.posts.Count(ctx, model.Filter{AuthorID: &author.ID})
	if err != nil {
		return nil, err
	}

	following, err := h.follows.IsFollowing(ctx, viewer, author)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"author":      author,
		"stats":       stats,
		"post_count":  count,
		"show_follow": viewer != nil && viewer.ID != author.ID,
		"following":   following,
	}, nil
}

func (h *PostHandler) renderForm(c *gin.Context, form model.PostForm, errs map[string]string, post *model.Post) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	data := gin.H{
		"form":   form,
		"errors": errs,
		"groups": groups,
		"labels": newPostLabels,
	}
	if post != nil {
		data["post"] = post
		data["labels"] = editPostLabels
	}
	response.HTML(c, http.StatusOK, "post_new.html", data)
}

// =====================================================
// LISTINGS
// =====================================================

// Index lists every post, 10 per page (wrapped by the page cache)
// GET /?page=
func (h *PostHandler) Index(c *gin.Context) {
	page, err := h.posts.List(c.Request.Context(), model.Filter{}, c.Query("page"))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "index.html", gin.H{"page": page})
}

// Profile lists the author's posts with follower counts
// GET /:username/?page=
func (h *PostHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := h.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}

	page, err := h.posts.List(ctx, model.Filter{AuthorID: &author.ID}, c.Query("page"))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	data, err := h.authorCard(ctx, middleware.CurrentUser(c), author)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	data["page"] = page

	response.HTML(c, http.StatusOK, "profile.html", data)
}

// =====================================================
// SINGLE POST
// =====================================================

// Detail shows one post with its comments
// GET /:username/:post_id/
func (h *PostHandler) Detail(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	viewer := middleware.CurrentUser(c)

	author, err := h.users.GetByID(ctx, post.AuthorID)
	if err != nil {
		handleError(c, err)
		return
	}

	comments, err := h.comments.ListByPost(ctx, post.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	data, err := h.authorCard(ctx, viewer, author)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	data["post"] = post
	data["comments"] = comments
	data["form"] = commentModel.CommentForm{}
	data["can_edit"] = viewer != nil && viewer.ID == post.AuthorID

	response.HTML(c, http.StatusOK, "post_view.html", data)
}

// NewPage renders the empty post form
// GET /new/
func (h *PostHandler) NewPage(c *gin.Context) {
	h.renderForm(c, model.PostForm{}, nil, nil)
}

// Create publishes a post as the current user
// POST /new/
func (h *PostHandler) Create(c *gin.Context) {
	form, err := readPostForm(c)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	_, err = h.posts.Create(c.Request.Context(), middleware.CurrentUser(c), form)
	if err != nil {
		if fields, ok := forms.FieldErrors(err); ok {
			h.renderForm(c, form, fields, nil)
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Redirect(c, "/")
}

// EditPage renders the form pre-filled with the post
// GET /:username/:post_id/edit/
func (h *PostHandler) EditPage(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	// Non-author không được biết gì thêm, chỉ quay về trang post
	if middleware.CurrentUser(c).ID != post.AuthorID {
		response.Redirect(c, postURL(post.Author.Username, post.ID))
		return
	}

	h.renderForm(c, model.FormFromPost(post), nil, post)
}

// Edit replaces text, group and image of the post
// POST /:username/:post_id/edit/
func (h *PostHandler) Edit(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	detail := postURL(post.Author.Username, post.ID)

	editor := middleware.CurrentUser(c)
	if editor.ID != post.AuthorID {
		response.Redirect(c, detail)
		return
	}

	form, err := readPostForm(c)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	if _, err := h.posts.Update(c.Request.Context(), editor, post, form); err != nil {
		if fields, ok := forms.FieldErrors(err); ok {
			h.renderForm(c, form, fields, post)
			return
		}
		if errors.Is(err, model.ErrNotAuthor) {
			response.Redirect(c, detail)
			return
		}
		handleError(c, err)
		return
	}

	response.Redirect(c, detail)
}
