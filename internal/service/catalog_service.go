package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
)

type catalogService struct {
	products repository.ProductRepository
	saved    repository.SavedRepository
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products repository.ProductRepository, saved repository.SavedRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		products: products,
		saved:    saved,
		logger:   logger.With().Str("component", "catalog_service").Logger(),
	}
}

func (s *catalogService) Browse(ctx context.Context, ident *model.Identity, f catalog.Filter) (*BrowseResult, error) {
	items, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	// Anonymous callers get a nil saved set, which leaves the only-saved
	// dimension inert.
	var saved map[string]struct{}
	if ident != nil && ident.UID != "" {
		ids, err := s.saved.ListIDs(ctx, ident.UID)
		if err != nil {
			return nil, fmt.Errorf("failed to list saved ids: %w", err)
		}
		saved = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			saved[id] = struct{}{}
		}
	}

	filtered := catalog.Apply(items, f, saved)

	s.logger.Debug().
		Int("total", len(items)).
		Int("count", len(filtered)).
		Msg("catalogue browsed")

	return &BrowseResult{
		Total:  len(items),
		Count:  len(filtered),
		Items:  filtered,
		Facets: catalog.Facets(items, f),
	}, nil
}
