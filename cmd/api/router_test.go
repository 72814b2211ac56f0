package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/config"
	groupModel "blog-backend/internal/domains/group/model"
	postModel "blog-backend/internal/domains/post/model"
	userModel "blog-backend/internal/domains/user/model"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/forms"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"
)

const testPassword = "s3cret-pass"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

type testApp struct {
	c      *container.Container
	router *gin.Engine
	now    time.Time
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:             "Blog",
			Environment:      "test",
			Version:          "test",
			StorageType:      config.StorageMemory,
			PasswordHashCost: 4,
		},
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			SessionExpiry: time.Hour,
		},
		Cache: config.CacheConfig{
			IndexTTL:        20 * time.Second,
			MemoryCacheSize: 128,
		},
	}

	c, err := container.NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	router, err := SetupRouter(c)
	require.NoError(t, err)

	app := &testApp{c: c, router: router, now: time.Now()}
	c.Cache.(*infraCache.MemoryCache).SetClock(func() time.Time { return app.now })
	return app
}

func (a *testApp) do(t *testing.T, method, target string, session *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if session != nil {
		req.AddCookie(session)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(t *testing.T, target string, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodGet, target, session, nil)
}

// signup đăng ký rồi login qua HTTP, trả về cookie session
func (a *testApp) signup(t *testing.T, username string) *http.Cookie {
	t.Helper()

	w := a.do(t, http.MethodPost, "/auth/signup/", nil, url.Values{
		"username":   {username},
		"email":      {username + "@example.com"},
		"first_name": {strings.ToUpper(username[:1]) + username[1:]},
		"password1":  {testPassword},
		"password2":  {testPassword},
	})
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	require.Equal(t, "/auth/login/", w.Header().Get("Location"))

	return a.login(t, username, testPassword, "")
}

func (a *testApp) login(t *testing.T, username, password, next string) *http.Cookie {
	t.Helper()

	w := a.do(t, http.MethodPost, "/auth/login/", nil, url.Values{
		"username": {username},
		"password": {password},
		"next":     {next},
	})
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func (a *testApp) user(t *testing.T, username string) *userModel.User {
	t.Helper()
	u, err := a.c.UserService.GetByUsername(context.Background(), username)
	require.NoError(t, err)
	return u
}

func (a *testApp) post(t *testing.T, author *userModel.User, text string) *postModel.Post {
	t.Helper()
	p, err := a.c.PostService.Create(context.Background(), author, postModel.PostForm{Text: text})
	require.NoError(t, err)
	return p
}

func (a *testApp) latestPost(t *testing.T) *postModel.Post {
	t.Helper()
	page, err := a.c.PostService.List(context.Background(), postModel.Filter{}, "1")
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	return page.Items[0]
}

func detailURL(p *postModel.Post) string {
	return fmt.Sprintf("/%s/%d/", p.Author.Username, p.ID)
}

func countPosts(body string) int {
	return strings.Count(body, `<article class="post"`)
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: 120, B: uint8(y * 8), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartPost(t *testing.T, text, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("text", text))
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

// ========================================
// TESTS
// ========================================

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.get(t, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "memory", data["services"].(map[string]interface{})["database"])
}

func TestHealthDegradedWithoutDatabase(t *testing.T) {
	memCache, err := infraCache.NewMemoryCache(8)
	require.NoError(t, err)
	c := &container.Container{
		Config: &config.Config{App: config.AppConfig{StorageType: config.StoragePostgres}},
		Cache:  memCache,
	}

	router := gin.New()
	router.GET("/health", healthCheckHandler(c))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SERVICE_DEGRADED", body.Error.Code)
	assert.Contains(t, body.Error.Message, "disconnected")
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")
	p := app.post(t, app.user(t, "alice"), "anonymous cannot touch this")

	cases := []struct {
		method string
		target string
		form   url.Values
	}{
		{http.MethodGet, "/new/", nil},
		{http.MethodPost, "/new/", url.Values{"text": {"sneaky"}}},
		{http.MethodGet, "/follow/", nil},
		{http.MethodPost, fmt.Sprintf("/alice/%d/comment", p.ID), url.Values{"text": {"hi"}}},
		{http.MethodGet, "/alice/follow/", nil},
		{http.MethodGet, fmt.Sprintf("/alice/%d/edit/", p.ID), nil},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			w := app.do(t, tc.method, tc.target, nil, tc.form)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/auth/login/?next="+url.QueryEscape(tc.target), w.Header().Get("Location"))
		})
	}

	count, err := app.c.PostService.Count(context.Background(), postModel.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	comments, err := app.c.CommentService.ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")

	w := app.do(t, http.MethodPost, "/auth/login/", nil, url.Values{
		"username": {"alice"},
		"password": {"wrong-password"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userModel.MsgInvalidCredentials)

	w = app.do(t, http.MethodPost, "/auth/login/", nil, url.Values{
		"username": {"alice"},
		"password": {testPassword},
		"next":     {"/new/"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/new/", w.Header().Get("Location"))

	// next trỏ ra ngoài thì bị bỏ qua
	w = app.do(t, http.MethodPost, "/auth/login/", nil, url.Values{
		"username": {"alice"},
		"password": {testPassword},
		"next":     {"//evil.example.com/"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	session := app.login(t, "alice", testPassword, "")
	w = app.get(t, "/new/", session)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Добавить запись")

	w = app.get(t, "/auth/logout/", session)
	assert.Equal(t, http.StatusFound, w.Code)
	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestSignupValidation(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")

	w := app.do(t, http.MethodPost, "/auth/signup/", nil, url.Values{
		"username":  {"alice"},
		"password1": {testPassword},
		"password2": {testPassword},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userModel.MsgUsernameTaken)

	w = app.do(t, http.MethodPost, "/auth/signup/", nil, url.Values{
		"username":  {"bob"},
		"password1": {testPassword},
		"password2": {"something-else"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userModel.MsgPasswordMismatch)
}

func TestCreatedPostShowsEverywhere(t *testing.T) {
	app := newTestApp(t)
	session := app.signup(t, "alice")

	g, err := app.c.GroupService.Create(context.Background(), groupModel.CreateGroupRequest{
		Title: "Cats",
		Slug:  "cats",
	})
	require.NoError(t, err)
	_, err = app.c.GroupService.Create(context.Background(), groupModel.CreateGroupRequest{
		Title: "Dogs",
		Slug:  "dogs",
	})
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/new/", session, url.Values{
		"text":  {"a post about cats"},
		"group": {fmt.Sprint(g.ID)},
	})
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	assert.Equal(t, "/", w.Header().Get("Location"))

	p := app.latestPost(t)
	require.NotNil(t, p.GroupID)
	assert.Equal(t, g.ID, *p.GroupID)

	for _, target := range []string{"/", "/alice/", "/group/cats/", detailURL(p)} {
		w := app.get(t, target, nil)
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Contains(t, w.Body.String(), "a post about cats", target)
	}

	w = app.get(t, "/group/dogs/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "a post about cats")
}

func TestEmptyPostIsRejected(t *testing.T) {
	app := newTestApp(t)
	session := app.signup(t, "alice")

	w := app.do(t, http.MethodPost, "/new/", session, url.Values{"text": {"   "}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), forms.MsgRequired)

	w = app.do(t, http.MethodPost, "/new/", session, url.Values{"text": {"ok"}, "group": {"999"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), forms.MsgInvalidChoice)

	count, err := app.c.PostService.Count(context.Background(), postModel.Filter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOnlyAuthorCanEdit(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	bob := app.signup(t, "bob")

	cats, err := app.c.GroupService.Create(context.Background(), groupModel.CreateGroupRequest{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)
	dogs, err := app.c.GroupService.Create(context.Background(), groupModel.CreateGroupRequest{Title: "Dogs", Slug: "dogs"})
	require.NoError(t, err)

	p, err := app.c.PostService.Create(context.Background(), app.user(t, "alice"), postModel.PostForm{
		Text:  "original text",
		Group: fmt.Sprint(cats.ID),
	})
	require.NoError(t, err)
	editURL := detailURL(p) + "edit/"

	// index được cache trước khi sửa
	assert.Contains(t, app.get(t, "/", nil).Body.String(), "original text")

	w := app.get(t, editURL, bob)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detailURL(p), w.Header().Get("Location"))

	w = app.do(t, http.MethodPost, editURL, bob, url.Values{"text": {"hacked"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detailURL(p), w.Header().Get("Location"))
	assert.Contains(t, app.get(t, detailURL(p), nil).Body.String(), "original text")

	w = app.get(t, editURL, alice)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Редактировать запись")
	assert.Contains(t, w.Body.String(), "original text")

	w = app.do(t, http.MethodPost, editURL, alice, url.Values{
		"text":  {"edited text"},
		"group": {fmt.Sprint(dogs.ID)},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detailURL(p), w.Header().Get("Location"))

	_, err = app.c.Cache.DeletePattern(context.Background(), shared.CacheKeyIndexPage+"*")
	require.NoError(t, err)

	for _, target := range []string{"/", "/alice/", "/group/dogs/", detailURL(p)} {
		body := app.get(t, target, nil).Body.String()
		assert.Contains(t, body, "edited text", target)
		assert.NotContains(t, body, "original text", target)
	}

	body := app.get(t, "/group/cats/", nil).Body.String()
	assert.NotContains(t, body, "edited text")
	assert.NotContains(t, body, "original text")
	assert.Equal(t, 0, countPosts(body))

	// edit dưới username khác là 404
	w = app.get(t, fmt.Sprintf("/bob/%d/edit/", p.ID), alice)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestComments(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")
	bob := app.signup(t, "bob")
	p := app.post(t, app.user(t, "alice"), "comment me")

	w := app.do(t, http.MethodPost, detailURL(p)+"comment", bob, url.Values{"text": {"nice post"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detailURL(p), w.Header().Get("Location"))

	// comment rỗng bị bỏ qua nhưng vẫn redirect
	w = app.do(t, http.MethodPost, detailURL(p)+"comment", bob, url.Values{"text": {""}})
	assert.Equal(t, http.StatusFound, w.Code)

	// GET chỉ quay về trang post
	w = app.get(t, detailURL(p)+"comment", bob)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detailURL(p), w.Header().Get("Location"))

	body := app.get(t, detailURL(p), bob).Body.String()
	assert.Contains(t, body, "nice post")
	assert.Contains(t, body, "Комментарии: 1")
	assert.Contains(t, body, `action="/alice/`)
}

func TestCommentWithUnreadableBody(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")
	bob := app.signup(t, "bob")
	p := app.post(t, app.user(t, "alice"), "comment me")

	logs := new(bytes.Buffer)
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(logs)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	// multipart không có boundary: bind lỗi, comment bị bỏ qua
	req := httptest.NewRequest(http.MethodPost, detailURL(p)+"comment", strings.NewReader("text=hi"))
	req.Header.Set("Content-Type", "multipart/form-data")
	req.AddCookie(bob)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detailURL(p), w.Header().Get("Location"))
	assert.Contains(t, logs.String(), "Could not bind comment form")

	comments, err := app.c.CommentService.ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestFollowFeed(t *testing.T) {
	app := newTestApp(t)
	alice := app.signup(t, "alice")
	app.signup(t, "bob")
	carol := app.signup(t, "carol")

	app.post(t, app.user(t, "bob"), "written by bob")
	app.post(t, app.user(t, "carol"), "written by carol")

	for i := 0; i < 2; i++ {
		w := app.get(t, "/bob/follow/", alice)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/bob/", w.Header().Get("Location"))
	}

	stats, err := app.c.FollowService.Stats(context.Background(), app.user(t, "bob"))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Followers)

	// tự follow mình không tạo edge
	app.get(t, "/alice/follow/", alice)
	stats, err = app.c.FollowService.Stats(context.Background(), app.user(t, "alice"))
	require.NoError(t, err)
	assert.Zero(t, stats.Followers)

	body := app.get(t, "/follow/", alice).Body.String()
	assert.Contains(t, body, "written by bob")
	assert.NotContains(t, body, "written by carol")

	body = app.get(t, "/follow/", carol).Body.String()
	assert.NotContains(t, body, "written by bob")
	assert.Equal(t, 0, countPosts(body))

	body = app.get(t, "/bob/", alice).Body.String()
	assert.Contains(t, body, "/bob/unfollow/")

	w := app.get(t, "/bob/unfollow/", alice)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 0, countPosts(app.get(t, "/follow/", alice).Body.String()))
	assert.Contains(t, app.get(t, "/bob/", alice).Body.String(), "/bob/follow/")

	w = app.get(t, "/ghost/follow/", alice)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexPageCache(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")
	alice := app.user(t, "alice")

	app.post(t, alice, "first entry")
	w := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "first entry")
	assert.Equal(t, "max-age=20", w.Header().Get("Cache-Control"))

	app.post(t, alice, "second entry")
	assert.NotContains(t, app.get(t, "/", nil).Body.String(), "second entry")

	app.now = app.now.Add(21 * time.Second)
	assert.Contains(t, app.get(t, "/", nil).Body.String(), "second entry")

	app.post(t, alice, "third entry")
	assert.NotContains(t, app.get(t, "/", nil).Body.String(), "third entry")

	_, err := app.c.Cache.DeletePattern(context.Background(), shared.CacheKeyIndexPage+"*")
	require.NoError(t, err)
	assert.Contains(t, app.get(t, "/", nil).Body.String(), "third entry")
}

func TestPagination(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")
	alice := app.user(t, "alice")
	for i := 1; i <= 13; i++ {
		app.post(t, alice, fmt.Sprintf("entry-%02d", i))
	}

	for _, base := range []string{"/", "/alice/"} {
		first := app.get(t, base, nil).Body.String()
		assert.Equal(t, 10, countPosts(first), base)
		assert.Contains(t, first, "entry-13")
		assert.NotContains(t, first, "entry-03")
		assert.Contains(t, first, `href="?page=2"`)

		second := app.get(t, base+"?page=2", nil).Body.String()
		assert.Equal(t, 3, countPosts(second), base)
		assert.Contains(t, second, "entry-01")
		assert.NotContains(t, second, "entry-04")

		// page không hợp lệ → trang 1, quá lớn → trang cuối
		assert.Equal(t, 10, countPosts(app.get(t, base+"?page=abc", nil).Body.String()))
		assert.Equal(t, 3, countPosts(app.get(t, base+"?page=99", nil).Body.String()))
	}
}

func TestImageUpload(t *testing.T) {
	app := newTestApp(t)
	session := app.signup(t, "alice")

	body, contentType := multipartPost(t, "not really a picture", "fake.png", []byte("plain text, not an image"))
	req := httptest.NewRequest(http.MethodPost, "/new/", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(session)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), forms.MsgInvalidImage)

	body, contentType = multipartPost(t, "with a picture", "pic.png", testPNG(t))
	req = httptest.NewRequest(http.MethodPost, "/new/", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	p := app.latestPost(t)
	require.True(t, p.HasImage())

	for _, target := range []string{"/", "/alice/", detailURL(p)} {
		assert.Contains(t, app.get(t, target, nil).Body.String(), `<img class="post-image" src="/media/`, target)
	}

	w = app.get(t, "/media/"+p.DisplayImage(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "image/"))

	assert.Equal(t, http.StatusNotFound, app.get(t, "/media/posts/missing.jpg", nil).Code)

	// object ngoài posts/ trong cùng bucket không được phục vụ
	require.NoError(t, app.c.Storage.Upload(context.Background(), "backups/dump.png", testPNG(t), "image/png"))
	assert.Equal(t, http.StatusNotFound, app.get(t, "/media/backups/dump.png", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.get(t, "/media/posts/../backups/dump.png", nil).Code)
}

func TestNotFoundPages(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice")
	app.signup(t, "bob")
	p := app.post(t, app.user(t, "alice"), "hello")

	targets := []string{
		"/this/route/does/not/exist/",
		"/ghost/",
		"/group/unknown/",
		fmt.Sprintf("/bob/%d/", p.ID),
		"/alice/999/",
		"/alice/abc/",
	}
	for _, target := range targets {
		w := app.get(t, target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.Contains(t, w.Body.String(), "Ошибка 404", target)
	}

	assert.Equal(t, http.StatusOK, app.get(t, detailURL(p), nil).Code)
}
