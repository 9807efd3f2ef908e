package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Portfolio represents a portfolio item stored in MongoDB
type Portfolio struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Technologies []string           `json:"technologies" bson:"technologies"`
	Skills       []string           `json:"skills,omitempty" bson:"skills,omitempty"`
	Link         string             `json:"link,omitempty" bson:"link,omitempty"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
}

// CreatePortfolioRequest defines the request body for creating a new portfolio item
type CreatePortfolioRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Description  string   `json:"description" validate:"required,min=1"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,min=1,max=50"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Link         string   `json:"link,omitempty" validate:"omitempty,url"`
	Image        string   `json:"image,omitempty" validate:"omitempty,url"`
}

// UpdatePortfolioRequest defines the request body for updating an existing portfolio item
type UpdatePortfolioRequest struct {
	Title        string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Technologies []string `json:"technologies,omitempty" validate:"omitempty,min=1,dive,min=1,max=50"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Link         string   `json:"link,omitempty" validate:"omitempty,url"`
	Image        string   `json:"image,omitempty" validate:"omitempty,url"`
}
