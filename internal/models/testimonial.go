package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Testimonial represents a testimonial stored in MongoDB
type Testimonial struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Testimonial string             `json:"testimonial" bson:"testimonial"`
	Designation string             `json:"designation,omitempty" bson:"designation,omitempty"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
}

// CreateTestimonialRequest defines the request body for creating a new testimonial
type CreateTestimonialRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Testimonial string `json:"testimonial" validate:"required,min=1,max=2000"`
	Designation string `json:"designation,omitempty" validate:"omitempty,max=100"`
	Link        string `json:"link,omitempty" validate:"omitempty,url"`
}

// UpdateTestimonialRequest defines the request body for updating an existing testimonial
type UpdateTestimonialRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Testimonial string `json:"testimonial,omitempty" validate:"omitempty,min=1,max=2000"`
	Designation string `json:"designation,omitempty" validate:"omitempty,max=100"`
	Link        string `json:"link,omitempty" validate:"omitempty,url"`
}
