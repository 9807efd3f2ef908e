package handlers

import (
	"net/http"
	"strconv"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/repositories"
	"github.com/devfolio/backend/pkg/markdown"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// BlogHandler handles HTTP requests related to blog posts
type BlogHandler struct {
	blogRepository    repositories.BlogRepository
	commentRepository repositories.CommentRepository     // To cascade comments on blog delete
	likeRepository    repositories.CommentLikeRepository // To cascade comment likes on blog delete
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogRepo repositories.BlogRepository, commentRepo repositories.CommentRepository, likeRepo repositories.CommentLikeRepository) *BlogHandler {
	return &BlogHandler{
		blogRepository:    blogRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
	}
}

// RegisterBlogRoutes registers blog routes. Reads are public; mutations
// require an admin.
func (h *BlogHandler) RegisterBlogRoutes(public, admin *echo.Group) {
	public.GET("/blogs", h.GetBlogs)
	public.GET("/blogs/:id", h.GetBlog)
	admin.POST("/blogs", h.CreateBlog)
	admin.PUT("/blogs/:id", h.UpdateBlog)
	admin.DELETE("/blogs/:id", h.DeleteBlog)
}

// CreateBlog creates a new blog post
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	var req models.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author := req.Author
	if author == "" {
		author = "Anonymous"
	}

	blog := &models.Blog{
		Title:       req.Title,
		Content:     req.Content,
		ContentHTML: markdown.Render(req.Content),
		Author:      author,
		Tags:        req.Tags,
		Image:       req.Image,
		IsPublished: req.IsPublished,
	}

	if err := h.blogRepository.CreateBlog(c.Request().Context(), blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, blog)
}

// GetBlogs retrieves all blog posts with pagination
func (h *BlogHandler) GetBlogs(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, err := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	blogs, err := h.blogRepository.GetAllBlogs(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, blogs)
}

// GetBlog retrieves a single blog post
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}
	return c.JSON(http.StatusOK, blog)
}

// UpdateBlog updates an existing blog post. Only the fields present in the
// request body change; unknown fields are never merged into the document.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	id := c.Param("id")

	var req models.UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
		blog.ContentHTML = markdown.Render(req.Content)
	}
	if req.Author != "" {
		blog.Author = req.Author
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if req.Image != "" {
		blog.Image = req.Image
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}

	if err := h.blogRepository.UpdateBlog(c.Request().Context(), id, blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, blog)
}

// DeleteBlog deletes a blog post together with its comments and their likes
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	id := c.Param("id")

	if _, err := h.blogRepository.GetBlogByID(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	// Delete associated comment likes and comments first
	if err := h.likeRepository.DeleteLikesByBlog(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.commentRepository.DeleteCommentsByBlogID(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.blogRepository.DeleteBlog(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Blog and associated comments deleted"})
}
