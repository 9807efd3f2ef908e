package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/devfolio/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBlogNotFound is returned when the referenced blog does not exist.
var ErrBlogNotFound = fmt.Errorf("blog not found")

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	GetAllBlogs(ctx context.Context, skip, limit int64) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, id string, blog *models.Blog) error
	DeleteBlog(ctx context.Context, id string) error
	IncrementCommentsCount(ctx context.Context, blogID string) error
	DecrementCommentsCount(ctx context.Context, blogID string) error
}

// MongoBlogRepository implements BlogRepository for MongoDB
type MongoBlogRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogRepository creates a new MongoBlogRepository
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{collection: db.Collection("blogs")}
}

// CreateBlog creates a new blog post in MongoDB
func (r *MongoBlogRepository) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	_, err := r.collection.InsertOne(ctx, blog)
	return err
}

// GetBlogByID retrieves a blog post by ID from MongoDB
func (r *MongoBlogRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid blog ID format: %w", err)
	}

	var blog models.Blog
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// GetAllBlogs retrieves all blog posts from MongoDB with pagination,
// newest first.
func (r *MongoBlogRepository) GetAllBlogs(ctx context.Context, skip, limit int64) ([]models.Blog, error) {
	var blogs []models.Blog
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// UpdateBlog updates an existing blog post in MongoDB
func (r *MongoBlogRepository) UpdateBlog(ctx context.Context, id string, blog *models.Blog) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid blog ID format: %w", err)
	}

	blog.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":        blog.Title,
			"content":      blog.Content,
			"content_html": blog.ContentHTML,
			"author":       blog.Author,
			"tags":         blog.Tags,
			"image":        blog.Image,
			"is_published": blog.IsPublished,
			"updated_at":   blog.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// DeleteBlog deletes a blog post by ID from MongoDB
func (r *MongoBlogRepository) DeleteBlog(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid blog ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// IncrementCommentsCount increments the comments count of a blog post
func (r *MongoBlogRepository) IncrementCommentsCount(ctx context.Context, blogID string) error {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return fmt.Errorf("invalid blog ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"comments_count": 1}})
	return err
}

// DecrementCommentsCount decrements the comments count of a blog post
func (r *MongoBlogRepository) DecrementCommentsCount(ctx context.Context, blogID string) error {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return fmt.Errorf("invalid blog ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"comments_count": -1}})
	return err
}
