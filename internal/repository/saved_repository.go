package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// savedRepository implements SavedRepository against the saved collection,
// one marker document per (userId, productId).
type savedRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
	now    func() time.Time
}

// NewSavedRepository creates a Mongo-backed saved-mark repository.
func NewSavedRepository(db *mongo.Database, logger zerolog.Logger) SavedRepository {
	return &savedRepository{
		col:    db.Collection("saved"),
		logger: logger.With().Str("repository", "saved").Logger(),
		now:    time.Now,
	}
}

// ListIDs retrieves the product ids the user has saved, oldest mark first.
func (r *savedRepository) ListIDs(ctx context.Context, userID string) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query saved marks")
		return nil, fmt.Errorf("failed to query saved marks: %w", err)
	}
	defer cur.Close(ctx)

	var marks []struct {
		ProductID string `bson:"productId"`
	}
	if err := cur.All(ctx, &marks); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode saved marks")
		return nil, fmt.Errorf("failed to decode saved marks: %w", err)
	}

	ids := make([]string, 0, len(marks))
	for _, m := range marks {
		ids = append(ids, m.ProductID)
	}
	return ids, nil
}

// Save upserts a marker document; existence is binary membership, so saving
// twice changes nothing.
func (r *savedRepository) Save(ctx context.Context, userID, productID string) error {
	filter := bson.M{"userId": userID, "productId": productID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"productId": productID,
			"createdAt": r.now(),
		},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to save mark")
		return fmt.Errorf("failed to save mark: %w", err)
	}
	return nil
}

// Unsave deletes the marker document.
func (r *savedRepository) Unsave(ctx context.Context, userID, productID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to delete mark")
		return fmt.Errorf("failed to delete mark: %w", err)
	}
	return nil
}
