package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogFixture struct {
	e        *echo.Echo
	handler  *BlogHandler
	blogs    *fakeBlogRepo
	comments *fakeCommentRepo
	likes    *fakeLikeRepo
}

func newBlogFixture() *blogFixture {
	blogs := &fakeBlogRepo{blogs: map[string]*models.Blog{
		testBlogID: {Title: "First post", Author: "admin", Content: "hello"},
	}}
	comments := &fakeCommentRepo{}
	likes := &fakeLikeRepo{
		comments: comments,
		uids:     map[uint]string{1: "uid-1", 2: "uid-2"},
		likes:    map[uint][]uint{},
	}
	return &blogFixture{
		e:        echo.New(),
		handler:  NewBlogHandler(blogs, comments, likes),
		blogs:    blogs,
		comments: comments,
		likes:    likes,
	}
}

func (f *blogFixture) call(fn echo.HandlerFunc, method, id string, body any) (*httptest.ResponseRecorder, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, "/", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return rec, fn(c)
}

func TestCreateBlogRendersMarkdown(t *testing.T) {
	f := newBlogFixture()

	rec, err := f.call(f.handler.CreateBlog, http.MethodPost, "", models.CreateBlogRequest{
		Title:   "Hello",
		Content: "# Heading\n\nbody",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blog))
	assert.Contains(t, blog.ContentHTML, "<h1")
	assert.Equal(t, "Anonymous", blog.Author)
	assert.False(t, blog.IsPublished)
}

func TestCreateBlogValidation(t *testing.T) {
	f := newBlogFixture()

	_, err := f.call(f.handler.CreateBlog, http.MethodPost, "", models.CreateBlogRequest{Title: "no content"})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestGetBlogNotFound(t *testing.T) {
	f := newBlogFixture()

	_, err := f.call(f.handler.GetBlog, http.MethodGet, "66f0c2b7e4a1d93f5b8a1cff", nil)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestUpdateBlogPartialFields(t *testing.T) {
	f := newBlogFixture()
	published := true

	rec, err := f.call(f.handler.UpdateBlog, http.MethodPut, testBlogID, models.UpdateBlogRequest{
		Content:     "## Updated",
		IsPublished: &published,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blog))
	assert.Equal(t, "First post", blog.Title) // untouched
	assert.Contains(t, blog.ContentHTML, "<h2")
	assert.True(t, blog.IsPublished)
}

func TestDeleteBlogCascadesCommentsAndLikes(t *testing.T) {
	f := newBlogFixture()
	root := models.Comment{BlogID: testBlogID, UserID: 1, Author: "uid-1", Content: "root"}
	require.NoError(t, f.comments.CreateComment(&root))
	reply := models.Comment{BlogID: testBlogID, UserID: 2, Author: "uid-2", ParentID: &root.ID, Content: "reply"}
	require.NoError(t, f.comments.CreateComment(&reply))
	_, err := f.likes.AddLike(root.ID, 2)
	require.NoError(t, err)

	rec, err := f.call(f.handler.DeleteBlog, http.MethodDelete, testBlogID, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog and associated comments deleted")

	remaining, err := f.comments.GetCommentsByBlogID(testBlogID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	uids, err := f.likes.GetLikerUIDs(root.ID)
	require.NoError(t, err)
	assert.Empty(t, uids)
}

func TestDeleteBlogNotFound(t *testing.T) {
	f := newBlogFixture()

	_, err := f.call(f.handler.DeleteBlog, http.MethodDelete, "66f0c2b7e4a1d93f5b8a1cff", nil)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}
