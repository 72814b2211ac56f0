package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment/model"
	postModel "blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/infrastructure/memstore"
	"blog-backend/internal/shared/forms"
)

func setup(t *testing.T) (ServiceInterface, *userModel.User, *postModel.Post) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	author := &userModel.User{ID: uuid.New(), Username: "sarah", IsActive: true}
	require.NoError(t, store.Users().Create(ctx, author))

	post := &postModel.Post{Text: "hello", AuthorID: author.ID}
	require.NoError(t, store.Posts().Create(ctx, post))

	return NewService(store.Comments()), author, post
}

func TestAdd_Success(t *testing.T) {
	ctx := context.Background()
	svc, author, post := setup(t)

	c, err := svc.Add(ctx, author, post, model.CommentForm{Text: "  nice post  "})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "nice post", c.Text)

	comments, err := svc.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "sarah", comments[0].Author.Username)
}

func TestAdd_Validation(t *testing.T) {
	ctx := context.Background()
	svc, author, post := setup(t)

	_, err := svc.Add(ctx, author, post, model.CommentForm{Text: " "})
	fields, ok := forms.FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, forms.MsgRequired, fields["text"])

	_, err = svc.Add(ctx, author, post, model.CommentForm{Text: strings.Repeat("я", model.MaxTextLength+1)})
	fields, ok = forms.FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields["text"], "500")

	// đúng 500 ký tự (không phải byte) vẫn hợp lệ
	_, err = svc.Add(ctx, author, post, model.CommentForm{Text: strings.Repeat("я", model.MaxTextLength)})
	assert.NoError(t, err)
}

func TestAdd_PostGone(t *testing.T) {
	svc, author, post := setup(t)
	gone := *post
	gone.ID = post.ID + 1

	_, err := svc.Add(context.Background(), author, &gone, model.CommentForm{Text: "late"})
	assert.ErrorIs(t, err, postModel.ErrPostNotFound)
}
