package handler

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/middleware"
	"github.com/Holly45vd/products/internal/service"
)

// ProductHandler handles catalogue browsing requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests. All filter dimensions are
// optional query parameters and combine with AND semantics.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	result, err := h.service.Browse(r.Context(), middleware.Identity(r), filterFromQuery(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Categories handles GET /api/categories requests and returns the fixed
// two-level category tree in display order.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, catalog.Tree())
}

// filterFromQuery builds the catalogue filter state from query parameters.
func filterFromQuery(r *http.Request) catalog.Filter {
	q := r.URL.Query()

	f := catalog.Filter{
		Query:          q.Get("q"),
		CategoryL1:     q.Get("l1"),
		CategoryL2:     q.Get("l2"),
		TagQuery:       q.Get("tags"),
		OnlySaved:      boolParam(q.Get("only_saved")),
		ExcludeRestock: boolParam(q.Get("exclude_restock")),
	}

	for _, raw := range q["facet_l1"] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				f.FacetL1s = append(f.FacetL1s, v)
			}
		}
	}
	if len(f.FacetL1s) > 0 {
		f.FacetMode = catalog.FacetInclude
		if q.Get("facet_mode") == "exclude" {
			f.FacetMode = catalog.FacetExclude
		}
	}

	return f
}

func boolParam(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "y", "yes":
		return true
	}
	return false
}
