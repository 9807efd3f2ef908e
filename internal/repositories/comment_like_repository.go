package repositories

import (
	"github.com/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

// CommentLikeRepository defines the interface for comment like operations.
// Likes behave as a set of users per comment: adding is idempotent and
// removing a like that does not exist is a no-op.
type CommentLikeRepository interface {
	AddLike(commentID, userID uint) (added bool, err error)
	RemoveLike(commentID, userID uint) (removed bool, err error)
	GetLikerUIDs(commentID uint) ([]string, error)
	GetLikerUIDsByBlog(blogID string) (map[uint][]string, error)
	DeleteLikesByComment(commentID uint) error
	DeleteLikesByBlog(blogID string) error
}

type postgresCommentLikeRepository struct {
	db *gorm.DB
}

func NewPostgresCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &postgresCommentLikeRepository{db: db}
}

// AddLike records a like unless the user already liked the comment.
// The unique index on (comment_id, user_id) backs the set semantics.
func (r *postgresCommentLikeRepository) AddLike(commentID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	like := &models.CommentLike{CommentID: commentID, UserID: userID}
	if err := r.db.Create(like).Error; err != nil {
		return false, err
	}
	return true, nil
}

// RemoveLike removes the user's like if present.
func (r *postgresCommentLikeRepository) RemoveLike(commentID, userID uint) (bool, error) {
	res := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetLikerUIDs returns the Firebase UIDs of every user who liked the comment.
func (r *postgresCommentLikeRepository) GetLikerUIDs(commentID uint) ([]string, error) {
	uids := []string{}
	err := r.db.Model(&models.CommentLike{}).
		Joins("JOIN users ON users.id = comment_likes.user_id").
		Where("comment_likes.comment_id = ?", commentID).
		Pluck("users.firebase_uid", &uids).Error
	return uids, err
}

type commentLikerRow struct {
	CommentID   uint
	FirebaseUID string
}

// GetLikerUIDsByBlog returns liker UIDs for every comment of a blog in one
// query, keyed by comment id.
func (r *postgresCommentLikeRepository) GetLikerUIDsByBlog(blogID string) (map[uint][]string, error) {
	var rows []commentLikerRow
	err := r.db.Model(&models.CommentLike{}).
		Select("comment_likes.comment_id AS comment_id, users.firebase_uid AS firebase_uid").
		Joins("JOIN users ON users.id = comment_likes.user_id").
		Joins("JOIN comments ON comments.id = comment_likes.comment_id").
		Where("comments.blog_id = ?", blogID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	likes := make(map[uint][]string, len(rows))
	for _, row := range rows {
		likes[row.CommentID] = append(likes[row.CommentID], row.FirebaseUID)
	}
	return likes, nil
}

// DeleteLikesByComment removes every like attached to the comment.
func (r *postgresCommentLikeRepository) DeleteLikesByComment(commentID uint) error {
	return r.db.Where("comment_id = ?", commentID).Delete(&models.CommentLike{}).Error
}

// DeleteLikesByBlog removes the likes of every comment belonging to a blog.
func (r *postgresCommentLikeRepository) DeleteLikesByBlog(blogID string) error {
	sub := r.db.Model(&models.Comment{}).Select("id").Where("blog_id = ?", blogID)
	return r.db.Where("comment_id IN (?)", sub).Delete(&models.CommentLike{}).Error
}
