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

type importService struct {
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewImportService creates a new CSV import/export service.
func NewImportService(products repository.ProductRepository, logger zerolog.Logger) ImportService {
	return &importService{
		products: products,
		logger:   logger.With().Str("component", "import_service").Logger(),
	}
}

func (s *importService) Preview(text string) *ImportPreview {
	records, skipped := ingest.ParseRecords(text)
	return &ImportPreview{
		Rows:    len(records),
		Skipped: skipped,
		Records: records,
	}
}

func (s *importService) Import(ctx context.Context, text string, opts repository.UpsertOptions) (model.ImportReport, error) {
	records, skipped := ingest.ParseRecords(text)
	report := model.ImportReport{
		Rows:    len(records),
		Skipped: skipped,
	}

	if len(records) == 0 {
		return report, nil
	}

	// Category pairs outside the tree are kept; imported rows may run
	// ahead of the menu, so the mismatch is only worth a warning.
	for _, rec := range records {
		if rec.CategoryL1 != "" && !catalog.ValidPair(rec.CategoryL1, rec.CategoryL2) {
			s.logger.Warn().
				Str("id", rec.ID).
				Str("l1", rec.CategoryL1).
				Str("l2", rec.CategoryL2).
				Msg("imported category pair not in the tree")
		}
	}

	result, err := s.products.Upsert(ctx, records, opts)
	report.Write = result
	if err != nil {
		return report, fmt.Errorf("failed to upsert records: %w", err)
	}

	s.logger.Info().
		Int("rows", report.Rows).
		Int("skipped", report.Skipped).
		Int("applied", result.Applied).
		Msg("import committed")

	return report, nil
}

func (s *importService) Template() []byte {
	return ingest.Template()
}

func (s *importService) Export(ctx context.Context, f catalog.Filter) ([]byte, error) {
	items, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	filtered := catalog.Apply(items, f, nil)
	return ingest.Export(filtered), nil
}
