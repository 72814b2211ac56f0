package shared

const (
	QueueDefault = "default"
	QueueLow     = "low"

	TypePostImageThumbnail = "post:image:thumbnail"
	TypePostImageBackfill  = "post:image:backfill"
)

// ThumbnailPayload: ImageKey cho phép job bỏ qua nếu ảnh của post đã bị thay
type ThumbnailPayload struct {
	PostID   int64  `json:"post_id"`
	ImageKey string `json:"image_key"`
}

// BackfillPayload is the scheduled sweep for posts still missing a thumbnail
type BackfillPayload struct {
	Limit int `json:"limit"`
}

// Context keys set by middleware
const (
	ContextUserKey      = "user"
	ContextRequestIDKey = "request_id"
)

// CacheKeyIndexPage là prefix của các trang index được cache
const CacheKeyIndexPage = "page:index:"
