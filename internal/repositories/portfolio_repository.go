package repositories

import (
	"context"
	"fmt"

	"github.com/devfolio/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPortfolioNotFound is returned when the referenced portfolio item does not exist.
var ErrPortfolioNotFound = fmt.Errorf("portfolio item not found")

// PortfolioRepository defines the interface for portfolio data operations
type PortfolioRepository interface {
	CreatePortfolio(ctx context.Context, item *models.Portfolio) error
	GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error)
	GetAllPortfolios(ctx context.Context) ([]models.Portfolio, error)
	UpdatePortfolio(ctx context.Context, id string, item *models.Portfolio) error
	DeletePortfolio(ctx context.Context, id string) error
}

// MongoPortfolioRepository implements PortfolioRepository for MongoDB
type MongoPortfolioRepository struct {
	collection *mongo.Collection
}

// NewMongoPortfolioRepository creates a new MongoPortfolioRepository
func NewMongoPortfolioRepository(db *mongo.Database) *MongoPortfolioRepository {
	return &MongoPortfolioRepository{collection: db.Collection("portfolios")}
}

// CreatePortfolio creates a new portfolio item in MongoDB
func (r *MongoPortfolioRepository) CreatePortfolio(ctx context.Context, item *models.Portfolio) error {
	item.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// GetPortfolioByID retrieves a portfolio item by ID from MongoDB
func (r *MongoPortfolioRepository) GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio ID format: %w", err)
	}

	var item models.Portfolio
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetAllPortfolios retrieves all portfolio items from MongoDB
func (r *MongoPortfolioRepository) GetAllPortfolios(ctx context.Context) ([]models.Portfolio, error) {
	var items []models.Portfolio
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdatePortfolio updates an existing portfolio item in MongoDB
func (r *MongoPortfolioRepository) UpdatePortfolio(ctx context.Context, id string, item *models.Portfolio) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid portfolio ID format: %w", err)
	}

	update := bson.M{
		"$set": bson.M{
			"title":        item.Title,
			"description":  item.Description,
			"technologies": item.Technologies,
			"skills":       item.Skills,
			"link":         item.Link,
			"image":        item.Image,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

// DeletePortfolio deletes a portfolio item by ID from MongoDB
func (r *MongoPortfolioRepository) DeletePortfolio(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid portfolio ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}
