package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentModel "blog-backend/internal/domains/comment/model"
	commentRepo "blog-backend/internal/domains/comment/repository"
	followModel "blog-backend/internal/domains/follow/model"
	followRepo "blog-backend/internal/domains/follow/repository"
	groupModel "blog-backend/internal/domains/group/model"
	groupRepo "blog-backend/internal/domains/group/repository"
	postModel "blog-backend/internal/domains/post/model"
	postRepo "blog-backend/internal/domains/post/repository"
	userModel "blog-backend/internal/domains/user/model"
	userRepo "blog-backend/internal/domains/user/repository"
)

var (
	_ userRepo.RepositoryInterface    = (*UserRepository)(nil)
	_ groupRepo.RepositoryInterface   = (*GroupRepository)(nil)
	_ postRepo.RepositoryInterface    = (*PostRepository)(nil)
	_ commentRepo.RepositoryInterface = (*CommentRepository)(nil)
	_ followRepo.RepositoryInterface  = (*FollowRepository)(nil)
)

type fixture struct {
	store *Store
	clock time.Time
}

func newFixture() *fixture {
	f := &fixture{store: New(), clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	// mỗi lần gọi now() tiến thêm 1 phút để pub_date luôn tăng
	f.store.SetClock(func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	})
	return f
}

func (f *fixture) user(t *testing.T, username string) *userModel.User {
	t.Helper()
	u := &userModel.User{ID: uuid.New(), Username: username, IsActive: true}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u
}

func (f *fixture) post(t *testing.T, author *userModel.User, text string, groupID *int64) *postModel.Post {
	t.Helper()
	p := &postModel.Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	require.NoError(t, f.store.Posts().Create(context.Background(), p))
	return p
}

func texts(posts []*postModel.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Text)
	}
	return out
}

func TestUsers_UniqueUsername(t *testing.T) {
	f := newFixture()
	f.user(t, "sarah")

	err := f.store.Users().Create(context.Background(), &userModel.User{ID: uuid.New(), Username: "sarah"})
	assert.ErrorIs(t, err, userModel.ErrUsernameTaken)

	got, err := f.store.Users().FindByUsername(context.Background(), "sarah")
	require.NoError(t, err)
	assert.False(t, got.DateJoined.IsZero())

	_, err = f.store.Users().FindByUsername(context.Background(), "john")
	assert.ErrorIs(t, err, userModel.ErrUserNotFound)
}

func TestPosts_ListOrderAndHydration(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")
	g := &groupModel.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, f.store.Groups().Create(ctx, g))

	f.post(t, sarah, "first", nil)
	f.post(t, sarah, "second", &g.ID)
	f.post(t, sarah, "third", nil)

	posts, err := f.store.Posts().List(ctx, postModel.Filter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, texts(posts))

	assert.Equal(t, "sarah", posts[1].Author.Username)
	require.NotNil(t, posts[1].Group)
	assert.Equal(t, "cats", posts[1].Group.Slug)

	page, err := f.store.Posts().List(ctx, postModel.Filter{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, texts(page))

	total, err := f.store.Posts().Count(ctx, postModel.Filter{GroupID: &g.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestPosts_SameTimestampOrderedByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.store.SetClock(func() time.Time { return fixed })

	sarah := f.user(t, "sarah")
	f.post(t, sarah, "a", nil)
	f.post(t, sarah, "b", nil)

	posts, err := f.store.Posts().List(ctx, postModel.Filter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, texts(posts))
}

func TestPosts_FollowerFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")
	john := f.user(t, "john")
	kyle := f.user(t, "kyle")

	f.post(t, john, "from john", nil)
	f.post(t, kyle, "from kyle", nil)

	created, err := f.store.Follows().GetOrCreate(ctx, sarah.ID, john.ID)
	require.NoError(t, err)
	assert.True(t, created)

	feed, err := f.store.Posts().List(ctx, postModel.Filter{FollowerID: &sarah.ID}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"from john"}, texts(feed))

	empty, err := f.store.Posts().List(ctx, postModel.Filter{FollowerID: &kyle.ID}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPosts_SetThumbnailOnlyForCurrentImage(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")

	img := "posts/a.png"
	p := &postModel.Post{Text: "pic", AuthorID: sarah.ID, Image: &img}
	require.NoError(t, f.store.Posts().Create(ctx, p))

	missing, err := f.store.Posts().ListMissingThumbnails(ctx, 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)

	ok, err := f.store.Posts().SetThumbnail(ctx, p.ID, "posts/other.png", "posts/thumbs/other.jpg")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.store.Posts().SetThumbnail(ctx, p.ID, img, "posts/thumbs/a.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.store.Posts().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "posts/thumbs/a.jpg", got.DisplayImage())

	missing, err = f.store.Posts().ListMissingThumbnails(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestComments_OrderAndCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")
	john := f.user(t, "john")
	p := f.post(t, sarah, "post", nil)

	require.NoError(t, f.store.Comments().Create(ctx, &commentModel.Comment{PostID: p.ID, AuthorID: john.ID, Text: "one"}))
	require.NoError(t, f.store.Comments().Create(ctx, &commentModel.Comment{PostID: p.ID, AuthorID: sarah.ID, Text: "two"}))

	comments, err := f.store.Comments().ListByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Text)
	assert.Equal(t, "john", comments[0].Author.Username)

	got, err := f.store.Posts().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)

	err = f.store.Comments().Create(ctx, &commentModel.Comment{PostID: 999, AuthorID: john.ID, Text: "x"})
	assert.ErrorIs(t, err, postModel.ErrPostNotFound)
}

func TestFollows_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")
	john := f.user(t, "john")

	for i := 0; i < 3; i++ {
		_, err := f.store.Follows().GetOrCreate(ctx, sarah.ID, john.ID)
		require.NoError(t, err)
	}
	n, err := f.store.Follows().CountFollowers(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = f.store.Follows().GetOrCreate(ctx, sarah.ID, sarah.ID)
	assert.ErrorIs(t, err, followModel.ErrSelfFollow)

	deleted, err := f.store.Follows().Delete(ctx, sarah.ID, john.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.store.Follows().Delete(ctx, sarah.ID, john.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFollows_DeleteOnlyMatchingEdge(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	carol := f.user(t, "carol")

	for _, edge := range [][2]uuid.UUID{{bob.ID, alice.ID}, {bob.ID, carol.ID}, {alice.ID, bob.ID}} {
		_, err := f.store.Follows().GetOrCreate(ctx, edge[0], edge[1])
		require.NoError(t, err)
	}

	deleted, err := f.store.Follows().Delete(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	ok, err := f.store.Follows().Exists(ctx, bob.ID, carol.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.store.Follows().Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := f.store.Follows().CountFollowers(ctx, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = f.store.Follows().CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = f.store.Follows().CountFollowing(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUsers_DeleteCascadeAndProtect(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")
	john := f.user(t, "john")

	sarahPost := f.post(t, sarah, "sarah post", nil)
	johnPost := f.post(t, john, "john post", nil)
	require.NoError(t, f.store.Comments().Create(ctx, &commentModel.Comment{PostID: johnPost.ID, AuthorID: sarah.ID, Text: "hi"}))
	require.NoError(t, f.store.Comments().Create(ctx, &commentModel.Comment{PostID: sarahPost.ID, AuthorID: john.ID, Text: "yo"}))
	_, err := f.store.Follows().GetOrCreate(ctx, sarah.ID, john.ID)
	require.NoError(t, err)

	// john có follower nên không xóa được
	assert.ErrorIs(t, f.store.Users().Delete(ctx, john.ID), userModel.ErrUserIsFollowed)

	require.NoError(t, f.store.Users().Delete(ctx, sarah.ID))

	_, err = f.store.Posts().FindByID(ctx, sarahPost.ID)
	assert.ErrorIs(t, err, postModel.ErrPostNotFound)

	comments, err := f.store.Comments().ListByPost(ctx, johnPost.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	n, err := f.store.Follows().CountFollowers(ctx, john.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// không còn follower, giờ xóa được
	assert.NoError(t, f.store.Users().Delete(ctx, john.ID))
}

func TestGroups_DeleteKeepsPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sarah := f.user(t, "sarah")
	g := &groupModel.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, f.store.Groups().Create(ctx, g))
	assert.ErrorIs(t, f.store.Groups().Create(ctx, &groupModel.Group{Title: "Dup", Slug: "cats"}), groupModel.ErrSlugTaken)

	p := f.post(t, sarah, "in group", &g.ID)
	require.NoError(t, f.store.Groups().DeleteBySlug(ctx, "cats"))

	got, err := f.store.Posts().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)

	assert.ErrorIs(t, f.store.Groups().DeleteBySlug(ctx, "cats"), groupModel.ErrGroupNotFound)
}
