package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/repository"
)

type savedService struct {
	products repository.ProductRepository
	saved    repository.SavedRepository
	logger   zerolog.Logger
}

// NewSavedService creates a new saved-products service.
func NewSavedService(products repository.ProductRepository, saved repository.SavedRepository, logger zerolog.Logger) SavedService {
	return &savedService{
		products: products,
		saved:    saved,
		logger:   logger.With().Str("component", "saved_service").Logger(),
	}
}

func (s *savedService) List(ctx context.Context, userID string) (*SavedList, error) {
	ids, err := s.saved.ListIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved ids: %w", err)
	}
	if len(ids) == 0 {
		return &SavedList{Items: nil}, nil
	}

	items, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved products: %w", err)
	}

	missing := len(ids) - len(items)
	if missing > 0 {
		s.logger.Info().
			Str("user_id", userID).
			Int("missing", missing).
			Msg("saved list references deleted products")
	}

	return &SavedList{Items: items, Missing: missing}, nil
}

func (s *savedService) Save(ctx context.Context, userID, productID string) error {
	if err := s.saved.Save(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (s *savedService) Unsave(ctx context.Context, userID, productID string) error {
	if err := s.saved.Unsave(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to unsave product: %w", err)
	}
	return nil
}
