package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	ThumbnailWidth  = 960
	ThumbnailHeight = 339

	// MaxImageSize là giới hạn upload mặc định (5MB)
	MaxImageSize = 5 * 1024 * 1024
)

var (
	ErrImageTooLarge     = errors.New("image too large")
	ErrNotAnImage        = errors.New("not an image")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// ImageInfo mô tả ảnh đã được validate
type ImageInfo struct {
	Format      string // jpeg, png, gif
	ContentType string
	Extension   string // .jpg, .png, .gif
	Width       int
	Height      int
}

type ImageProcessor struct {
	MaxSize int64 // bytes (default: 5MB)
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: MaxImageSize}
}

// ValidateImage chấp nhận JPEG/PNG/GIF decode được và không vượt MaxSize
func (p *ImageProcessor) ValidateImage(data []byte) (*ImageInfo, error) {
	if int64(len(data)) > p.MaxSize {
		return nil, fmt.Errorf("%w: exceeds %dMB", ErrImageTooLarge, p.MaxSize/(1024*1024))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	switch format {
	case "jpeg", "png", "gif":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	// Header hợp lệ nhưng body hỏng vẫn phải bị từ chối
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	mt := mimetype.Detect(data)
	return &ImageInfo{
		Format:      format,
		ContentType: mt.String(),
		Extension:   mt.Extension(),
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// Thumbnail crop giữa ảnh về 960x339 và encode JPEG chất lượng 90
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	thumb := imaging.Fill(img, ThumbnailWidth, ThumbnailHeight, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// DetectContentType dùng cho media endpoint
func DetectContentType(data []byte) string {
	return mimetype.Detect(data).String()
}
