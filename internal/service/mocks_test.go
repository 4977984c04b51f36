package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Upsert(ctx context.Context, records []ingest.Record, opts repository.UpsertOptions) (model.BulkResult, error) {
	args := m.Called(ctx, records, opts)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockProductRepository) AddTags(ctx context.Context, ids, tags []string) (model.BulkResult, error) {
	args := m.Called(ctx, ids, tags)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockProductRepository) RemoveTags(ctx context.Context, ids, tags []string) (model.BulkResult, error) {
	args := m.Called(ctx, ids, tags)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockProductRepository) SetCategory(ctx context.Context, ids []string, l1, l2 string) (model.BulkResult, error) {
	args := m.Called(ctx, ids, l1, l2)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, ids []string) (model.BulkResult, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

// MockSavedRepository is a mock implementation of repository.SavedRepository.
type MockSavedRepository struct {
	mock.Mock
}

func (m *MockSavedRepository) ListIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSavedRepository) Save(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockSavedRepository) Unsave(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, userID, orderID string) (*model.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, userID, orderID string) error {
	args := m.Called(ctx, userID, orderID)
	return args.Error(0)
}
