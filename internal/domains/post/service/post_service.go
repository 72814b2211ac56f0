package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	groupModel "blog-backend/internal/domains/group/model"
	groupService "blog-backend/internal/domains/group/service"
	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/forms"
	"blog-backend/internal/shared/pagination"
)

type postService struct {
	repo      repository.RepositoryInterface
	groups    groupService.ServiceInterface
	storage   storage.ObjectStorage
	images    *storage.ImageProcessor
	thumbnail ThumbnailEnqueuer // nil: build thumbnail ngay trong request
}

func NewService(
	repo repository.RepositoryInterface,
	groups groupService.ServiceInterface,
	objectStorage storage.ObjectStorage,
	images *storage.ImageProcessor,
	thumbnail ThumbnailEnqueuer,
) ServiceInterface {
	return &postService{
		repo:      repo,
		groups:    groups,
		storage:   objectStorage,
		images:    images,
		thumbnail: thumbnail,
	}
}

// ========================================
// LISTING
// ========================================

func (s *postService) List(ctx context.Context, filter model.Filter, page string) (*pagination.Page[*model.Post], error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	w := pagination.Resolve(page, total, pagination.PerPage)
	posts, err := s.repo.List(ctx, filter, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(posts, w, total), nil
}

func (s *postService) Count(ctx context.Context, filter model.Filter) (int, error) {
	return s.repo.Count(ctx, filter)
}

func (s *postService) GetForAuthor(ctx context.Context, username string, id int64) (*model.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Author.Username != username {
		return nil, model.ErrPostNotFound
	}
	return p, nil
}

// ========================================
// CREATE / UPDATE
// ========================================

// cleanedForm là kết quả validate PostForm
type cleanedForm struct {
	text    string
	groupID *int64
	image   *storage.ImageInfo
}

// clean validate toàn bộ form và gom lỗi theo field giống một ModelForm
func (s *postService) clean(ctx context.Context, form *model.PostForm) (*cleanedForm, error) {
	form.Normalize()

	errs := validation.Errors{}
	if err := form.Validate(); err != nil {
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for k, v := range verrs {
			errs[k] = v
		}
	}

	out := &cleanedForm{text: form.Text}

	if form.Group != "" {
		id, convErr := strconv.ParseInt(form.Group, 10, 64)
		if convErr != nil {
			errs["group"] = errors.New(forms.MsgInvalidChoice)
		} else if _, err := s.groups.GetByID(ctx, id); err != nil {
			if !errors.Is(err, groupModel.ErrGroupNotFound) {
				return nil, err
			}
			errs["group"] = errors.New(forms.MsgInvalidChoice)
		} else {
			out.groupID = &id
		}
	}

	if form.Image != nil && len(form.Image.Data) > 0 {
		info, err := s.images.ValidateImage(form.Image.Data)
		switch {
		case form.ClearImage:
			errs["image"] = errors.New(forms.MsgFileAndClear)
		case errors.Is(err, storage.ErrImageTooLarge):
			errs["image"] = errors.New(forms.MsgImageTooLarge)
		case err != nil:
			errs["image"] = errors.New(forms.MsgInvalidImage)
		default:
			out.image = info
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (s *postService) storeImage(ctx context.Context, data []byte, info *storage.ImageInfo) (string, error) {
	key := model.ImageKeyPrefix + uuid.New().String() + info.Extension
	if err := s.storage.Upload(ctx, key, data, info.ContentType); err != nil {
		return "", fmt.Errorf("store post image: %w", err)
	}
	return key, nil
}

func (s *postService) Create(ctx context.Context, author *userModel.User, form model.PostForm) (*model.Post, error) {
	cleaned, err := s.clean(ctx, &form)
	if err != nil {
		return nil, err
	}

	p := &model.Post{
		Text:     cleaned.text,
		AuthorID: author.ID,
		Author:   author.AsAuthor(),
		GroupID:  cleaned.groupID,
	}

	if cleaned.image != nil {
		key, err := s.storeImage(ctx, form.Image.Data, cleaned.image)
		if err != nil {
			return nil, err
		}
		p.Image = &key
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info().
		Int64("post_id", p.ID).
		Str("author", author.Username).
		Msg("Post created")

	s.scheduleThumbnail(ctx, p)
	return p, nil
}

func (s *postService) Update(ctx context.Context, editor *userModel.User, p *model.Post, form model.PostForm) (*model.Post, error) {
	if editor == nil || editor.ID != p.AuthorID {
		return nil, model.ErrNotAuthor
	}

	cleaned, err := s.clean(ctx, &form)
	if err != nil {
		return nil, err
	}

	updated := *p
	updated.Text = cleaned.text
	updated.GroupID = cleaned.groupID
	updated.Group = nil

	imageChanged := false
	switch {
	case cleaned.image != nil:
		key, err := s.storeImage(ctx, form.Image.Data, cleaned.image)
		if err != nil {
			return nil, err
		}
		updated.Image = &key
		updated.ImageThumb = nil
		imageChanged = true
	case form.ClearImage:
		updated.Image = nil
		updated.ImageThumb = nil
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", p.ID).Msg("Post updated")

	if imageChanged {
		s.scheduleThumbnail(ctx, &updated)
	}
	return s.repo.FindByID(ctx, p.ID)
}

// ========================================
// THUMBNAILS
// ========================================

// scheduleThumbnail không làm fail request: post vẫn hiển thị ảnh gốc nếu thumbnail lỗi
func (s *postService) scheduleThumbnail(ctx context.Context, p *model.Post) {
	if !p.HasImage() {
		return
	}

	if s.thumbnail != nil {
		if err := s.thumbnail.EnqueueThumbnail(ctx, p.ID, *p.Image); err != nil {
			log.Error().Err(err).Int64("post_id", p.ID).Msg("Failed to enqueue thumbnail task")
		}
		return
	}

	if err := s.GenerateThumbnail(ctx, p.ID, *p.Image); err != nil {
		log.Error().Err(err).Int64("post_id", p.ID).Msg("Failed to build thumbnail")
		return
	}
	if thumb := thumbKeyFor(*p.Image); thumb != "" {
		p.ImageThumb = &thumb
	}
}

func thumbKeyFor(imageKey string) string {
	base := strings.TrimSuffix(path.Base(imageKey), path.Ext(imageKey))
	if base == "" || base == "." || base == "/" {
		return ""
	}
	return model.ThumbKeyPrefix + base + ".jpg"
}

// GenerateThumbnail build thumbnail 960x339 cho imageKey.
// Bỏ qua (không lỗi) nếu post đã bị xóa hoặc ảnh đã bị thay.
func (s *postService) GenerateThumbnail(ctx context.Context, postID int64, imageKey string) error {
	p, err := s.repo.FindByID(ctx, postID)
	if errors.Is(err, model.ErrPostNotFound) {
		log.Warn().Int64("post_id", postID).Msg("Post gone, skipping thumbnail")
		return nil
	}
	if err != nil {
		return err
	}
	if p.Image == nil || *p.Image != imageKey {
		return nil
	}

	data, err := s.storage.Download(ctx, imageKey)
	if err != nil {
		return fmt.Errorf("download %s: %w", imageKey, err)
	}

	thumb, err := s.images.Thumbnail(data)
	if err != nil {
		return fmt.Errorf("build thumbnail: %w", err)
	}

	thumbKey := thumbKeyFor(imageKey)
	if err := s.storage.Upload(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}

	updated, err := s.repo.SetThumbnail(ctx, postID, imageKey, thumbKey)
	if err != nil {
		return err
	}
	if !updated {
		// ảnh bị thay giữa chừng
		_ = s.storage.Delete(ctx, thumbKey)
		return nil
	}

	log.Info().Int64("post_id", postID).Str("thumb", thumbKey).Msg("Thumbnail generated")
	return nil
}

// BackfillThumbnails build thumbnail cho các post còn thiếu, trả về số post đã xử lý thành công
func (s *postService) BackfillThumbnails(ctx context.Context, limit int) (int, error) {
	posts, err := s.repo.ListMissingThumbnails(ctx, limit)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := s.GenerateThumbnail(ctx, p.ID, *p.Image); err != nil {
			log.Error().Err(err).Int64("post_id", p.ID).Msg("Backfill thumbnail failed")
			continue
		}
		done++
	}
	return done, nil
}
