package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// batchLimit caps the operations per committed batch. The store allows 500;
// 400 leaves a safety margin. Chunks commit independently and sequentially,
// so a mid-sequence failure leaves earlier chunks applied.
const batchLimit = 400

// productRepository implements ProductRepository against the products
// collection.
type productRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
	now    func() time.Time
}

// NewProductRepository creates a Mongo-backed product repository.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		col:    db.Collection("products"),
		logger: logger.With().Str("repository", "product").Logger(),
		now:    time.Now,
	}
}

// List retrieves the full product list ordered by updatedAt descending.
// This order is the canonical result order: filters downstream subtract
// from it, never reorder.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cur.Close(ctx)

	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByIDs retrieves the products whose ids exist; order follows updatedAt
// descending like List.
func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by ids")
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}
	defer cur.Close(ctx)

	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// Upsert writes parsed CSV records keyed by id. Merge mode $sets only the
// fields the record defines so absent columns never clobber stored values;
// overwrite mode replaces the document with exactly the record's fields.
func (r *productRepository) Upsert(ctx context.Context, recs []ingest.Record, opts UpsertOptions) (model.BulkResult, error) {
	models := make([]mongo.WriteModel, 0, len(recs))
	now := r.now()

	for _, rec := range recs {
		payload := recordPayload(rec, opts, now)
		if opts.Overwrite {
			payload["_id"] = rec.ID
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"_id": rec.ID}).
				SetReplacement(payload).
				SetUpsert(true))
		} else {
			models = append(models, mongo.NewUpdateOneModel().
				SetFilter(bson.M{"_id": rec.ID}).
				SetUpdate(bson.M{"$set": payload}).
				SetUpsert(true))
		}
	}

	return r.commitChunks(ctx, "upsert", models)
}

// AddTags unions tag tokens into each document's tag set. Set semantics
// absorb duplicates, so concurrent adds of the same tag cannot lose data.
func (r *productRepository) AddTags(ctx context.Context, ids []string, tags []string) (model.BulkResult, error) {
	update := bson.M{
		"$addToSet": bson.M{"tags": bson.M{"$each": tags}},
		"$set":      bson.M{"updatedAt": r.now()},
	}
	return r.commitChunks(ctx, "tag-add", r.updateModels(ids, update))
}

// RemoveTags removes tag tokens from each document's tag set.
func (r *productRepository) RemoveTags(ctx context.Context, ids []string, tags []string) (model.BulkResult, error) {
	update := bson.M{
		"$pullAll": bson.M{"tags": tags},
		"$set":     bson.M{"updatedAt": r.now()},
	}
	return r.commitChunks(ctx, "tag-remove", r.updateModels(ids, update))
}

// SetCategory unconditionally overwrites both category fields together.
func (r *productRepository) SetCategory(ctx context.Context, ids []string, l1, l2 string) (model.BulkResult, error) {
	update := bson.M{
		"$set": bson.M{
			"categoryL1": l1,
			"categoryL2": l2,
			"updatedAt":  r.now(),
		},
	}
	return r.commitChunks(ctx, "category-assign", r.updateModels(ids, update))
}

// Delete removes the selected documents.
func (r *productRepository) Delete(ctx context.Context, ids []string) (model.BulkResult, error) {
	models := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		models = append(models, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": id}))
	}
	return r.commitChunks(ctx, "delete", models)
}

func (r *productRepository) updateModels(ids []string, update bson.M) []mongo.WriteModel {
	models := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(update))
	}
	return models
}

// commitChunks commits write models in sequential batches of batchLimit.
// There is no cross-chunk atomicity: a failure is reported as partial
// success with everything before the failed chunk left applied.
func (r *productRepository) commitChunks(ctx context.Context, op string, models []mongo.WriteModel) (model.BulkResult, error) {
	result := model.BulkResult{Requested: len(models)}
	if len(models) == 0 {
		return result, nil
	}

	for start := 0; start < len(models); start += batchLimit {
		end := min(start+batchLimit, len(models))
		result.Chunks++

		_, err := r.col.BulkWrite(ctx, models[start:end], options.BulkWrite().SetOrdered(true))
		if err != nil {
			result.Partial = true
			result.FailedAt = result.Chunks
			result.Reason = err.Error()
			r.logger.Error().Err(err).
				Str("op", op).
				Int("chunk", result.Chunks).
				Int("applied", result.Applied).
				Int("requested", result.Requested).
				Msg("bulk write failed mid-sequence; earlier chunks remain applied")
			return result, fmt.Errorf("bulk %s failed at chunk %d: %w", op, result.Chunks, err)
		}
		result.Applied = end
	}

	r.logger.Debug().
		Str("op", op).
		Int("applied", result.Applied).
		Int("chunks", result.Chunks).
		Msg("bulk write committed")

	return result, nil
}

// recordPayload builds the write payload from a record: only defined,
// non-empty fields appear, which is what gives merge upserts their
// keep-what-the-row-omitted behaviour.
func recordPayload(rec ingest.Record, opts UpsertOptions, now time.Time) bson.M {
	payload := bson.M{"updatedAt": now}

	setString := func(key, v string) {
		if v != "" {
			payload[key] = v
		}
	}
	setString("name", rec.Name)
	setString("imageUrl", rec.ImageURL)
	setString("link", rec.Link)
	setString("productCode", rec.ProductCode)
	setString("status", rec.Status)

	if rec.Price != nil {
		payload["price"] = *rec.Price
	}
	if rec.Rating != nil {
		payload["rating"] = *rec.Rating
	}
	if rec.ReviewCount != nil {
		payload["reviewCount"] = *rec.ReviewCount
	}
	if rec.Views != nil {
		payload["views"] = *rec.Views
	}
	if rec.Stock != nil {
		payload["stock"] = *rec.Stock
	}
	if rec.Restockable != nil {
		payload["restockable"] = *rec.Restockable
	}
	if opts.ReplaceTags && rec.Tags != nil {
		payload["tags"] = rec.Tags
	}
	if opts.ReplaceCategories {
		setString("categoryL1", rec.CategoryL1)
		setString("categoryL2", rec.CategoryL2)
	}

	return payload
}
