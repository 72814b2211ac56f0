package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func sampleGIF(t *testing.T) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	buf := new(bytes.Buffer)
	require.NoError(t, gif.Encode(buf, img, nil))
	return buf.Bytes()
}

func TestValidateImage_PNG(t *testing.T) {
	p := NewImageProcessor()

	info, err := p.ValidateImage(samplePNG(t, 20, 10))
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, ".png", info.Extension)
	assert.Equal(t, 20, info.Width)
}

func TestValidateImage_GIF(t *testing.T) {
	info, err := NewImageProcessor().ValidateImage(sampleGIF(t))
	require.NoError(t, err)
	assert.Equal(t, "gif", info.Format)
	assert.Equal(t, ".gif", info.Extension)
}

func TestValidateImage_Rejects(t *testing.T) {
	p := NewImageProcessor()

	_, err := p.ValidateImage([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	p.MaxSize = 10
	_, err = p.ValidateImage(samplePNG(t, 20, 10))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestValidateImage_TruncatedBody(t *testing.T) {
	data := samplePNG(t, 50, 50)
	_, err := NewImageProcessor().ValidateImage(data[:60])
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestThumbnail(t *testing.T) {
	thumb, err := NewImageProcessor().Thumbnail(samplePNG(t, 100, 80))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, ThumbnailWidth, cfg.Width)
	assert.Equal(t, ThumbnailHeight, cfg.Height)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.Upload(ctx, "posts/a.png", []byte("abc"), "image/png"))
	data, err := s.Download(ctx, "posts/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	require.NoError(t, s.Delete(ctx, "posts/a.png"))
	_, err = s.Download(ctx, "posts/a.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
