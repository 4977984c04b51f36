package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/mock"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/middleware"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
	"github.com/Holly45vd/products/internal/service"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Browse(ctx context.Context, ident *model.Identity, f catalog.Filter) (*service.BrowseResult, error) {
	args := m.Called(ctx, ident, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BrowseResult), args.Error(1)
}

// MockSavedService is a mock implementation of service.SavedService.
type MockSavedService struct {
	mock.Mock
}

func (m *MockSavedService) List(ctx context.Context, userID string) (*service.SavedList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SavedList), args.Error(1)
}

func (m *MockSavedService) Save(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockSavedService) Unsave(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Preview(text string) *service.ImportPreview {
	args := m.Called(text)
	return args.Get(0).(*service.ImportPreview)
}

func (m *MockImportService) Import(ctx context.Context, text string, opts repository.UpsertOptions) (model.ImportReport, error) {
	args := m.Called(ctx, text, opts)
	return args.Get(0).(model.ImportReport), args.Error(1)
}

func (m *MockImportService) Template() []byte {
	args := m.Called()
	return args.Get(0).([]byte)
}

func (m *MockImportService) Export(ctx context.Context, f catalog.Filter) ([]byte, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockBulkService is a mock implementation of service.BulkService.
type MockBulkService struct {
	mock.Mock
}

func (m *MockBulkService) AddTags(ctx context.Context, ids []string, rawTags string) (model.BulkResult, error) {
	args := m.Called(ctx, ids, rawTags)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockBulkService) RemoveTags(ctx context.Context, ids []string, rawTags string) (model.BulkResult, error) {
	args := m.Called(ctx, ids, rawTags)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockBulkService) SetCategory(ctx context.Context, ids []string, l1, l2 string) (model.BulkResult, error) {
	args := m.Called(ctx, ids, l1, l2)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

func (m *MockBulkService) Delete(ctx context.Context, ids []string) (model.BulkResult, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(model.BulkResult), args.Error(1)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, userID string, req *model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, userID, orderID string) (*model.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, userID, orderID string) error {
	args := m.Called(ctx, userID, orderID)
	return args.Error(0)
}

// authedRequest builds a request carrying an authenticated identity, the way
// the auth middleware would hand it to a handler.
func authedRequest(method, target, body string, ident *model.Identity) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, readerFor(body))
	}
	if ident != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), ident))
	}
	return req
}
