package repository

import (
	"context"

	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"
)

// UpsertOptions control how CSV records are written.
type UpsertOptions struct {
	// Overwrite replaces the whole document instead of merging fields.
	Overwrite bool
	// ReplaceTags applies the record's tag list; when false the stored
	// tags are kept regardless of the CSV.
	ReplaceTags bool
	// ReplaceCategories applies the record's categoryL1/L2; when false the
	// stored categories are kept.
	ReplaceCategories bool
}

// ProductRepository defines product data access operations.
type ProductRepository interface {
	// List retrieves the full product list ordered by updatedAt descending.
	List(ctx context.Context) ([]model.Product, error)

	// GetByIDs retrieves the products whose ids are present in the store.
	// Missing ids are not an error; they simply yield fewer results.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Upsert writes parsed CSV records in chunked batches. Merge mode only
	// touches fields the record defines.
	Upsert(ctx context.Context, recs []ingest.Record, opts UpsertOptions) (model.BulkResult, error)

	// AddTags unions tag tokens into each selected document's tag set.
	AddTags(ctx context.Context, ids []string, tags []string) (model.BulkResult, error)

	// RemoveTags removes tag tokens from each selected document's tag set.
	RemoveTags(ctx context.Context, ids []string, tags []string) (model.BulkResult, error)

	// SetCategory overwrites both category fields together on each
	// selected document.
	SetCategory(ctx context.Context, ids []string, l1, l2 string) (model.BulkResult, error)

	// Delete removes the selected documents.
	Delete(ctx context.Context, ids []string) (model.BulkResult, error)
}

// SavedRepository defines saved-mark data access operations.
type SavedRepository interface {
	// ListIDs retrieves the product ids a user has saved.
	ListIDs(ctx context.Context, userID string) ([]string, error)

	// Save records a saved mark; saving twice is a no-op.
	Save(ctx context.Context, userID, productID string) error

	// Unsave deletes a saved mark; unsaving a missing mark is a no-op.
	Unsave(ctx context.Context, userID, productID string) error
}

// OrderRepository defines order data access operations. All reads and
// deletes are scoped to the owning user.
type OrderRepository interface {
	// Create persists a composed order.
	Create(ctx context.Context, order *model.Order) error

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)

	// GetByID retrieves one of the user's orders, nil when not found.
	GetByID(ctx context.Context, userID, orderID string) (*model.Order, error)

	// Delete removes one of the user's orders.
	Delete(ctx context.Context, userID, orderID string) error
}
