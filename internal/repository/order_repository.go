package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jmarlow/course-store/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are append-only: there is no update or delete path.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
}

// MongoOrderRepository implements OrderRepository over a Mongo collection
type MongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository creates an order repository backed by the given collection
func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{coll: coll}
}

// GetAll returns all orders in storage-native order
func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert persists a single order, assigning it an identifier
func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, order)
	return err
}
