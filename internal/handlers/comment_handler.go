package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	likeRepository    repositories.CommentLikeRepository
	blogRepository    repositories.BlogRepository // To verify ownership and update comment counts
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, likeRepo repositories.CommentLikeRepository, blogRepo repositories.BlogRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
		blogRepository:    blogRepo,
	}
}

// RegisterCommentRoutes registers comment routes. Listing is public;
// every mutation requires authentication.
func (h *CommentHandler) RegisterCommentRoutes(public, protected *echo.Group) {
	public.GET("/blogs/:blog_id/comments", h.ListComments)
	protected.POST("/blogs/:blog_id/comments", h.CreateComment)
	protected.PUT("/blogs/:blog_id/comments/:comment_id", h.UpdateComment)
	protected.DELETE("/blogs/:blog_id/comments/:comment_id", h.DeleteComment)
	protected.POST("/blogs/:blog_id/comments/:comment_id/like", h.LikeComment)
	protected.POST("/blogs/:blog_id/comments/:comment_id/unlike", h.UnlikeComment)
}

func currentClaims(c echo.Context) (*models.JwtCustomClaims, error) {
	claims, ok := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims")
	}
	return claims, nil
}

// getBlogComment loads a comment and verifies it belongs to the blog in the
// request path. A comment under a different blog reads as not found.
func (h *CommentHandler) getBlogComment(c echo.Context) (*models.Comment, error) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.BlogID != c.Param("blog_id") {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	return comment, nil
}

// CreateComment creates a new comment, top-level or a reply depending on
// the presence of parent_id. The author is always the authenticated user.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	blogID := c.Param("blog_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify blog exists
	if _, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	// A reply must reference an existing comment on the same blog
	if req.ParentID != nil {
		parent, err := h.commentRepository.GetCommentByID(*req.ParentID)
		if err != nil || parent.BlogID != blogID {
			return echo.NewHTTPError(http.StatusNotFound, "Parent comment not found")
		}
	}

	author := claims.FirebaseUID
	if author == "" {
		author = "Anonymous"
	}

	comment := &models.Comment{
		BlogID:   blogID,
		UserID:   claims.UserID,
		Author:   author,
		ParentID: req.ParentID,
		Content:  req.Content,
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Increment comments count in the blog
	go h.blogRepository.IncrementCommentsCount(context.Background(), blogID)

	comment.Likes = []string{}
	comment.Replies = []uint{}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments retrieves all comments for a blog as a flat list. Each
// comment carries its likes set and the IDs of its direct replies; nesting
// is left to the caller.
func (h *CommentHandler) ListComments(c echo.Context) error {
	blogID := c.Param("blog_id")

	if _, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	comments, err := h.commentRepository.GetCommentsByBlogID(blogID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likes, err := h.likeRepository.GetLikerUIDsByBlog(blogID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	replies := make(map[uint][]uint, len(comments))
	for i := range comments {
		if comments[i].ParentID != nil {
			replies[*comments[i].ParentID] = append(replies[*comments[i].ParentID], comments[i].ID)
		}
	}

	for i := range comments {
		comments[i].Likes = likes[comments[i].ID]
		if comments[i].Likes == nil {
			comments[i].Likes = []string{}
		}
		comments[i].Replies = replies[comments[i].ID]
		if comments[i].Replies == nil {
			comments[i].Replies = []uint{}
		}
	}

	return c.JSON(http.StatusOK, comments)
}

// UpdateComment replaces a comment's content. Only the author may edit.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	comment, err := h.getBlogComment(c)
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Ensure the user updating the comment is the owner
	if comment.UserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this comment")
	}

	comment.Content = req.Content

	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment.Likes, err = h.likeRepository.GetLikerUIDs(comment.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	comment.Replies, err = h.commentRepository.GetReplyIDs(comment.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment and its likes. Replies are not cascaded:
// they keep a dangling ParentID and disappear from the rendered tree.
// Authors may delete their own comments; admins may delete any.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	comment, err := h.getBlogComment(c)
	if err != nil {
		return err
	}

	if comment.UserID != claims.UserID && !claims.IsAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.likeRepository.DeleteLikesByComment(comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.commentRepository.DeleteComment(comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Decrement comments count in the blog
	go h.blogRepository.DecrementCommentsCount(context.Background(), comment.BlogID)

	return c.NoContent(http.StatusNoContent)
}

// LikeComment adds the authenticated user to the comment's likes set.
// Liking twice has the same effect as liking once.
func (h *CommentHandler) LikeComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	comment, err := h.getBlogComment(c)
	if err != nil {
		return err
	}

	added, err := h.likeRepository.AddLike(comment.ID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likes, err := h.likeRepository.GetLikerUIDs(comment.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	message := "Comment liked"
	if !added {
		message = "Comment already liked"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     message,
		"likes_count": len(likes),
		"likes":       likes,
	})
}

// UnlikeComment removes the authenticated user from the comment's likes
// set. Unliking a comment the user never liked is a no-op.
func (h *CommentHandler) UnlikeComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	comment, err := h.getBlogComment(c)
	if err != nil {
		return err
	}

	removed, err := h.likeRepository.RemoveLike(comment.ID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likes, err := h.likeRepository.GetLikerUIDs(comment.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	message := "Comment like removed"
	if !removed {
		message = "Comment was not liked"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     message,
		"likes_count": len(likes),
		"likes":       likes,
	})
}
