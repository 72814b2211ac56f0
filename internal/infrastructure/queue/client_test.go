package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared"
)

func TestNewThumbnailTask(t *testing.T) {
	task, err := NewThumbnailTask(42, "posts/abc.png")
	require.NoError(t, err)
	assert.Equal(t, shared.TypePostImageThumbnail, task.Type())

	var payload shared.ThumbnailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, int64(42), payload.PostID)
	assert.Equal(t, "posts/abc.png", payload.ImageKey)
}
