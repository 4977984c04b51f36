package service

import (
	"context"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
)

// BrowseResult is a filtered catalogue view plus the facet counts that were
// active while computing it.
type BrowseResult struct {
	Total  int                  `json:"total"`
	Count  int                  `json:"count"`
	Items  []model.Product      `json:"items"`
	Facets []catalog.FacetCount `json:"facets,omitempty"`
}

// SavedList is a user's saved products. Missing counts saved ids whose
// product no longer exists; informational, not an error.
type SavedList struct {
	Items   []model.Product `json:"items"`
	Missing int             `json:"missing"`
}

// ImportPreview is the parse result shown before committing an upsert.
type ImportPreview struct {
	Rows    int             `json:"rows"`
	Skipped int             `json:"skipped"`
	Records []ingest.Record `json:"records"`
}

// CatalogService computes catalogue views.
type CatalogService interface {
	// Browse loads the full list and applies the filter state. The saved
	// dimension is a no-op when ident is nil.
	Browse(ctx context.Context, ident *model.Identity, f catalog.Filter) (*BrowseResult, error)
}

// SavedService manages a user's saved products.
type SavedService interface {
	List(ctx context.Context, userID string) (*SavedList, error)
	Save(ctx context.Context, userID, productID string) error
	Unsave(ctx context.Context, userID, productID string) error
}

// ImportService handles CSV ingestion, template and export.
type ImportService interface {
	// Preview parses CSV text without writing anything.
	Preview(text string) *ImportPreview

	// Import parses CSV text and upserts the records in chunked batches.
	Import(ctx context.Context, text string, opts repository.UpsertOptions) (model.ImportReport, error)

	// Template returns the BOM-prefixed header-only template file.
	Template() []byte

	// Export renders the filtered catalogue as a BOM-prefixed CSV.
	Export(ctx context.Context, f catalog.Filter) ([]byte, error)
}

// BulkService applies grouped mutations across a selected-document set.
type BulkService interface {
	AddTags(ctx context.Context, ids []string, rawTags string) (model.BulkResult, error)
	RemoveTags(ctx context.Context, ids []string, rawTags string) (model.BulkResult, error)
	SetCategory(ctx context.Context, ids []string, l1, l2 string) (model.BulkResult, error)
	Delete(ctx context.Context, ids []string) (model.BulkResult, error)
}

// OrderService composes and manages order sheets.
type OrderService interface {
	Create(ctx context.Context, userID string, req *model.OrderRequest) (*model.Order, error)
	List(ctx context.Context, userID string) ([]model.Order, error)
	Get(ctx context.Context, userID, orderID string) (*model.Order, error)
	Delete(ctx context.Context, userID, orderID string) error
}
