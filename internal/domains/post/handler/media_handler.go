package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/response"
)

// MediaHandler phục vụ ảnh post từ object storage
type MediaHandler struct {
	storage storage.ObjectStorage
}

func NewMediaHandler(objectStorage storage.ObjectStorage) *MediaHandler {
	return &MediaHandler{storage: objectStorage}
}

// Serve streams one post image. Keys chứa uuid nên cache lâu được.
// GET /media/*key
func (h *MediaHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if !strings.HasPrefix(key, model.ImageKeyPrefix) || strings.Contains(key, "..") {
		response.NotFound(c)
		return
	}

	data, err := h.storage.Download(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, storage.DetectContentType(data), data)
}
