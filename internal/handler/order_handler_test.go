package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Holly45vd/products/internal/model"
)

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{UID: "user-1"}

	t.Run("Creates an order", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders, logger)

		created := &model.Order{ID: "o-1", UserID: "user-1", FinalTotal: 2200}
		mockOrders.On("Create", mock.Anything, "user-1", mock.AnythingOfType("*model.OrderRequest")).
			Return(created, nil).
			Run(func(args mock.Arguments) {
				req := args.Get(2).(*model.OrderRequest)
				assert.Equal(t, "2025-08-15", req.OrderDate)
				assert.Equal(t, int64(300), req.Discount.Int64())
				require.Len(t, req.Items, 1)
			})

		body := `{"orderName":"8월 발주","orderDate":"2025-08-15","discountAmount":"300","items":[{"productId":"1","qty":2}]}`
		req := authedRequest(http.MethodPost, "/api/orders", body, ident)
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got model.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "o-1", got.ID)

		mockOrders.AssertExpectations(t)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		h := NewOrderHandler(new(MockOrderService), logger)

		req := authedRequest(http.MethodPost, "/api/orders", "{not json", ident)
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), model.ErrCodeInvalidJSON)
	})

	t.Run("Domain errors map to 400 with their code", func(t *testing.T) {
		tests := []struct {
			name         string
			err          error
			expectedCode string
		}{
			{name: "Empty order", err: model.ErrOrderEmpty, expectedCode: model.ErrCodeOrderEmpty},
			{name: "Bad date", err: model.ErrInvalidOrderDate, expectedCode: model.ErrCodeInvalidOrderDate},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockOrders := new(MockOrderService)
				h := NewOrderHandler(mockOrders, logger)

				mockOrders.On("Create", mock.Anything, "user-1", mock.AnythingOfType("*model.OrderRequest")).
					Return(nil, tt.err)

				req := authedRequest(http.MethodPost, "/api/orders", `{"items":[]}`, ident)
				rec := httptest.NewRecorder()
				h.Create(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			})
		}
	})

	t.Run("Unexpected error becomes opaque 500", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders, logger)

		mockOrders.On("Create", mock.Anything, "user-1", mock.AnythingOfType("*model.OrderRequest")).
			Return(nil, errors.New("database error"))

		req := authedRequest(http.MethodPost, "/api/orders", `{"items":[]}`, ident)
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database error")
	})
}

func TestOrderHandler_List(t *testing.T) {
	mockOrders := new(MockOrderService)
	h := NewOrderHandler(mockOrders, zerolog.Nop())

	mockOrders.On("List", mock.Anything, "user-1").Return([]model.Order{{ID: "o-2"}, {ID: "o-1"}}, nil)

	req := authedRequest(http.MethodGet, "/api/orders", "", &model.Identity{UID: "user-1"})
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "o-2", got[0].ID)
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{UID: "user-1"}

	t.Run("Found", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders, logger)

		mockOrders.On("Get", mock.Anything, "user-1", "o-1").Return(&model.Order{ID: "o-1"}, nil)

		req := authedRequest(http.MethodGet, "/api/orders/o-1", "", ident)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not found maps to 404", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders, logger)

		mockOrders.On("Get", mock.Anything, "user-1", "o-9").Return(nil, model.ErrOrderNotFound)

		req := authedRequest(http.MethodGet, "/api/orders/o-9", "", ident)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Missing id", func(t *testing.T) {
		h := NewOrderHandler(new(MockOrderService), logger)

		req := authedRequest(http.MethodGet, "/api/orders/", "", ident)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{UID: "user-1"}

	t.Run("Deletes own order", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders, logger)

		mockOrders.On("Delete", mock.Anything, "user-1", "o-1").Return(nil)

		req := authedRequest(http.MethodDelete, "/api/orders/o-1", "", ident)
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Someone else's order reads as not found", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders, logger)

		mockOrders.On("Delete", mock.Anything, "user-1", "o-2").Return(model.ErrOrderNotFound)

		req := authedRequest(http.MethodDelete, "/api/orders/o-2", "", ident)
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
