package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
)

type bulkService struct {
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewBulkService creates a new bulk mutation service.
func NewBulkService(products repository.ProductRepository, logger zerolog.Logger) BulkService {
	return &bulkService{
		products: products,
		logger:   logger.With().Str("component", "bulk_service").Logger(),
	}
}

func (s *bulkService) AddTags(ctx context.Context, ids []string, rawTags string) (model.BulkResult, error) {
	ids, tags, err := validateTagOp(ids, rawTags)
	if err != nil {
		return model.BulkResult{}, err
	}
	return s.products.AddTags(ctx, ids, tags)
}

func (s *bulkService) RemoveTags(ctx context.Context, ids []string, rawTags string) (model.BulkResult, error) {
	ids, tags, err := validateTagOp(ids, rawTags)
	if err != nil {
		return model.BulkResult{}, err
	}
	return s.products.RemoveTags(ctx, ids, tags)
}

func (s *bulkService) SetCategory(ctx context.Context, ids []string, l1, l2 string) (model.BulkResult, error) {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return model.BulkResult{}, model.ErrNoSelection
	}
	if !catalog.ValidPair(l1, l2) {
		return model.BulkResult{}, fmt.Errorf("%w: %s / %s", model.ErrInvalidCategoryPair, l1, l2)
	}
	return s.products.SetCategory(ctx, ids, l1, l2)
}

func (s *bulkService) Delete(ctx context.Context, ids []string) (model.BulkResult, error) {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return model.BulkResult{}, model.ErrNoSelection
	}
	s.logger.Info().Int("count", len(ids)).Msg("deleting products")
	return s.products.Delete(ctx, ids)
}

func validateTagOp(ids []string, rawTags string) ([]string, []string, error) {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return nil, nil, model.ErrNoSelection
	}
	tags := ingest.TokenizeTags(rawTags)
	if len(tags) == 0 {
		return nil, nil, model.ErrNoTags
	}
	return ids, tags, nil
}

func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = ingest.Clean(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
