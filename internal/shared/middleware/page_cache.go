package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/pkg/cache"
)

// cachedPage là response đã render được lưu trong cache
type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder giữ lại body và chỉ gắn Cache-Control khi status là 200
type bodyRecorder struct {
	gin.ResponseWriter
	body         *bytes.Buffer
	cacheControl string
}

func (w *bodyRecorder) WriteHeader(code int) {
	if code == http.StatusOK {
		w.Header().Set("Cache-Control", w.cacheControl)
	} else {
		w.Header().Del("Cache-Control")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) markCacheable() {
	if !w.Written() && w.Status() == http.StatusOK {
		w.Header().Set("Cache-Control", w.cacheControl)
	}
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.markCacheable()
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.markCacheable()
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache cache toàn bộ trang GET theo viewer + request URI.
// Chỉ response 200 được lưu và nhận Cache-Control; trang của user đăng nhập là private.
// Lỗi cache không làm fail request.
func PageCache(store cache.Cache, prefix string, ttl time.Duration) gin.HandlerFunc {
	maxAge := fmt.Sprintf("max-age=%d", int(ttl.Seconds()))

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		viewer := "anon"
		cacheControl := maxAge
		if user := CurrentUser(c); user != nil {
			viewer = user.Username
			cacheControl = "private, " + maxAge
		}
		key := prefix + viewer + ":" + c.Request.URL.RequestURI()
		ctx := c.Request.Context()

		var page cachedPage
		found, err := store.Get(ctx, key, &page)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Page cache read failed")
		}
		if found {
			c.Header("Cache-Control", cacheControl)
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: new(bytes.Buffer), cacheControl: cacheControl}
		c.Writer = recorder
		c.Next()

		if recorder.Status() != http.StatusOK {
			return
		}

		page = cachedPage{
			Status:      http.StatusOK,
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		}
		if err := store.Set(ctx, key, page, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Page cache write failed")
		}
	}
}
