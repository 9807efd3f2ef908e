package repositories

import (
	"context"
	"fmt"

	"github.com/devfolio/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTestimonialNotFound is returned when the referenced testimonial does not exist.
var ErrTestimonialNotFound = fmt.Errorf("testimonial not found")

// TestimonialRepository defines the interface for testimonial data operations
type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
	GetTestimonialByID(ctx context.Context, id string) (*models.Testimonial, error)
	GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, t *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error
}

// MongoTestimonialRepository implements TestimonialRepository for MongoDB
type MongoTestimonialRepository struct {
	collection *mongo.Collection
}

// NewMongoTestimonialRepository creates a new MongoTestimonialRepository
func NewMongoTestimonialRepository(db *mongo.Database) *MongoTestimonialRepository {
	return &MongoTestimonialRepository{collection: db.Collection("testimonials")}
}

// CreateTestimonial creates a new testimonial in MongoDB
func (r *MongoTestimonialRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	t.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, t)
	return err
}

// GetTestimonialByID retrieves a testimonial by ID from MongoDB
func (r *MongoTestimonialRepository) GetTestimonialByID(ctx context.Context, id string) (*models.Testimonial, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid testimonial ID format: %w", err)
	}

	var t models.Testimonial
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetAllTestimonials retrieves all testimonials from MongoDB
func (r *MongoTestimonialRepository) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// UpdateTestimonial updates an existing testimonial in MongoDB
func (r *MongoTestimonialRepository) UpdateTestimonial(ctx context.Context, id string, t *models.Testimonial) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid testimonial ID format: %w", err)
	}

	update := bson.M{
		"$set": bson.M{
			"name":        t.Name,
			"testimonial": t.Testimonial,
			"designation": t.Designation,
			"link":        t.Link,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

// DeleteTestimonial deletes a testimonial by ID from MongoDB
func (r *MongoTestimonialRepository) DeleteTestimonial(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid testimonial ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
