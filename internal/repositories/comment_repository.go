package repositories

import (
	"github.com/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByBlogID(blogID string) ([]models.Comment, error)
	GetReplyIDs(commentID uint) ([]uint, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
	DeleteCommentsByBlogID(blogID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByBlogID retrieves all comments for a blog, flat and in
// storage order. Callers sort and nest as needed.
func (r *PostgresCommentRepository) GetCommentsByBlogID(blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("blog_id = ?", blogID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetReplyIDs returns the IDs of comments whose ParentID is the given comment.
func (r *PostgresCommentRepository) GetReplyIDs(commentID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.Model(&models.Comment{}).
		Where("parent_id = ?", commentID).
		Pluck("id", &ids).Error
	return ids, err
}

// UpdateComment updates an existing comment in PostgreSQL
func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteComment deletes a comment by ID. Replies are not cascaded; their
// ParentID is left dangling and the tree builder drops them on read.
func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// DeleteCommentsByBlogID deletes every comment belonging to a blog.
// Used when the owning blog itself is deleted.
func (r *PostgresCommentRepository) DeleteCommentsByBlogID(blogID string) error {
	return r.db.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error
}
