package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/model"
)

func browseProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "전통문양 봉투", Tags: []string{"전통", "봉투"}, CategoryL1: "문구/팬시"},
		{ID: "2", Name: "크리스마스 카드", Tags: []string{"카드"}, CategoryL1: "문구/팬시"},
		{ID: "3", Name: "무지 봉투", Tags: []string{"봉투"}, Status: "재입고 예정"},
	}
}

func TestCatalogService_Browse(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Anonymous browse returns everything", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockSaved := new(MockSavedRepository)
		svc := NewCatalogService(mockProducts, mockSaved, logger)

		mockProducts.On("List", ctx).Return(browseProducts(), nil)

		result, err := svc.Browse(ctx, nil, catalog.Filter{})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 3, result.Count)
		assert.Len(t, result.Items, 3)
		assert.Nil(t, result.Facets)

		mockProducts.AssertExpectations(t)
		mockSaved.AssertNotCalled(t, "ListIDs", ctx, "")
	})

	t.Run("Authenticated browse loads the saved set", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockSaved := new(MockSavedRepository)
		svc := NewCatalogService(mockProducts, mockSaved, logger)

		mockProducts.On("List", ctx).Return(browseProducts(), nil)
		mockSaved.On("ListIDs", ctx, "user-1").Return([]string{"2"}, nil)

		ident := &model.Identity{UID: "user-1"}
		result, err := svc.Browse(ctx, ident, catalog.Filter{OnlySaved: true})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 1, result.Count)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "2", result.Items[0].ID)

		mockProducts.AssertExpectations(t)
		mockSaved.AssertExpectations(t)
	})

	t.Run("Anonymous only-saved is a no-op", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockSaved := new(MockSavedRepository)
		svc := NewCatalogService(mockProducts, mockSaved, logger)

		mockProducts.On("List", ctx).Return(browseProducts(), nil)

		result, err := svc.Browse(ctx, nil, catalog.Filter{OnlySaved: true})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		assert.Len(t, result.Items, 3)
		mockSaved.AssertNotCalled(t, "ListIDs", mock.Anything, mock.Anything)
	})

	t.Run("Tag filter produces facets", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockSaved := new(MockSavedRepository)
		svc := NewCatalogService(mockProducts, mockSaved, logger)

		mockProducts.On("List", ctx).Return(browseProducts(), nil)

		result, err := svc.Browse(ctx, nil, catalog.Filter{TagQuery: "봉투"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
		require.Equal(t, []catalog.FacetCount{
			{Label: "문구/팬시", Count: 1},
			{Label: catalog.FacetUnspecified, Count: 1},
		}, result.Facets)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockSaved := new(MockSavedRepository)
		svc := NewCatalogService(mockProducts, mockSaved, logger)

		mockProducts.On("List", ctx).Return(nil, errors.New("database error"))

		result, err := svc.Browse(ctx, nil, catalog.Filter{})

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Saved lookup error", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockSaved := new(MockSavedRepository)
		svc := NewCatalogService(mockProducts, mockSaved, logger)

		mockProducts.On("List", ctx).Return(browseProducts(), nil)
		mockSaved.On("ListIDs", ctx, "user-1").Return(nil, errors.New("database error"))

		result, err := svc.Browse(ctx, &model.Identity{UID: "user-1"}, catalog.Filter{})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
