package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog post stored in MongoDB
type Blog struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"` // Markdown source
	ContentHTML   string             `json:"content_html,omitempty" bson:"content_html,omitempty"`
	Author        string             `json:"author" bson:"author"`
	Tags          []string           `json:"tags" bson:"tags"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	IsPublished   bool               `json:"is_published" bson:"is_published"`
	CommentsCount int                `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateBlogRequest defines the request body for creating a new blog post
type CreateBlogRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Content     string   `json:"content" validate:"required,min=1"`
	Author      string   `json:"author,omitempty" validate:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Image       string   `json:"image,omitempty" validate:"omitempty,url"`
	IsPublished bool     `json:"is_published,omitempty"`
}

// UpdateBlogRequest defines the request body for updating an existing blog post
type UpdateBlogRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content     string   `json:"content,omitempty" validate:"omitempty,min=1"`
	Author      string   `json:"author,omitempty" validate:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Image       string   `json:"image,omitempty" validate:"omitempty,url"`
	IsPublished *bool    `json:"is_published,omitempty"`
}
