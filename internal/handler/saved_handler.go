package handler

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/middleware"
	"github.com/Holly45vd/products/internal/service"
)

// SavedHandler handles saved-product HTTP requests. Every route requires an
// authenticated caller; the router enforces that before dispatch.
type SavedHandler struct {
	service service.SavedService
	logger  zerolog.Logger
}

// NewSavedHandler creates a new saved-products handler.
func NewSavedHandler(service service.SavedService, logger zerolog.Logger) *SavedHandler {
	return &SavedHandler{
		service: service,
		logger:  logger.With().Str("handler", "saved").Logger(),
	}
}

// List handles GET /api/saved requests.
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	ident := middleware.Identity(r)
	list, err := h.service.List(r.Context(), ident.UID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Save handles PUT /api/saved/{productID} requests. Saving an already-saved
// product succeeds without duplicating the mark.
func (h *SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	productID := savedProductID(r)
	if productID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_PRODUCT_ID", "product ID is required", h.logger)
		return
	}

	ident := middleware.Identity(r)
	if err := h.service.Save(r.Context(), ident.UID, productID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unsave handles DELETE /api/saved/{productID} requests. Removing a mark
// that does not exist is a no-op.
func (h *SavedHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	productID := savedProductID(r)
	if productID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_PRODUCT_ID", "product ID is required", h.logger)
		return
	}

	ident := middleware.Identity(r)
	if err := h.service.Unsave(r.Context(), ident.UID, productID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func savedProductID(r *http.Request) string {
	return strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/saved/"))
}
