package repository

import (
	"context"
	"fmt"

	"github.com/Holly45vd/products/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements OrderRepository against the orders collection.
// Orders are immutable once written; there is no update path.
type orderRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewOrderRepository creates a Mongo-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		col:    db.Collection("orders"),
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists a composed order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Msg("order created")

	return nil
}

// ListByUser retrieves the user's orders, newest first.
func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []model.Order
	if err := cur.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves one of the user's orders; nil when not found or owned
// by someone else.
func (r *orderRepository) GetByID(ctx context.Context, userID, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.col.FindOne(ctx, bson.M{"_id": orderID, "userId": userID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Debug().Str("order_id", orderID).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	return &order, nil
}

// Delete removes one of the user's orders.
func (r *orderRepository) Delete(ctx context.Context, userID, orderID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": orderID, "userId": userID})
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}
