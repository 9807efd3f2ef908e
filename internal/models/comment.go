package models

import "time"

// Comment represents a single comment on a blog post. Comments are stored
// flat; the reply hierarchy is derived from ParentID on read.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlogID    string    `json:"blog_id" gorm:"index;size:24"` // ID of the blog the comment belongs to (MongoDB ObjectID as string)
	UserID    uint      `json:"-" gorm:"index"`               // ID of the user who made the comment
	Author    string    `json:"author"`                       // Firebase UID of the author, "Anonymous" if unknown
	ParentID  *uint     `json:"parent_id,omitempty" gorm:"index"` // Nullable for top-level comments; no FK cascade, a deleted parent leaves this dangling
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived fields, populated by handlers on read. Not persisted.
	Likes   []string `json:"likes" gorm:"-"`   // Firebase UIDs of users who liked this comment
	Replies []uint   `json:"replies" gorm:"-"` // IDs of comments whose ParentID is this comment
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
