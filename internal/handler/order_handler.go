package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/middleware"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/service"
)

// OrderHandler handles order-related HTTP requests. All routes are
// owner-scoped: callers only ever see their own orders.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	ident := middleware.Identity(r)
	order, err := h.service.Create(r.Context(), ident.UID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests and returns the caller's orders,
// newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := middleware.Identity(r)
	orders, err := h.service.List(r.Context(), ident.UID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID := orderIDFromPath(r)
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_ORDER_ID", "order ID is required", h.logger)
		return
	}

	ident := middleware.Identity(r)
	order, err := h.service.Get(r.Context(), ident.UID, orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := orderIDFromPath(r)
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_ORDER_ID", "order ID is required", h.logger)
		return
	}

	ident := middleware.Identity(r)
	if err := h.service.Delete(r.Context(), ident.UID, orderID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func orderIDFromPath(r *http.Request) string {
	return strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/orders/"))
}
