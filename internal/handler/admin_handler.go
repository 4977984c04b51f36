package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
	"github.com/Holly45vd/products/internal/service"
)

// maxImportBytes caps the accepted CSV upload size.
const maxImportBytes = 32 << 20

// AdminHandler handles catalogue administration requests: CSV import and
// export plus the bulk mutation endpoints. The router guards every route
// with the admin policy.
type AdminHandler struct {
	imports service.ImportService
	bulk    service.BulkService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(imports service.ImportService, bulk service.BulkService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		imports: imports,
		bulk:    bulk,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// bulkRequest is the shared body shape of the bulk mutation endpoints.
type bulkRequest struct {
	IDs  []string `json:"ids"`
	Tags string   `json:"tags,omitempty"`
	L1   string   `json:"l1,omitempty"`
	L2   string   `json:"l2,omitempty"`
}

// Import handles POST /api/admin/import requests. The body is the raw CSV
// text. With ?preview=1 the text is parsed and returned without writing
// anything; otherwise the records are upserted in chunked batches and the
// report includes partial-failure details.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "failed to read request body", h.logger)
		return
	}
	text := string(body)

	q := r.URL.Query()
	if boolParam(q.Get("preview")) {
		writeJSON(w, http.StatusOK, h.imports.Preview(text))
		return
	}

	opts := repository.UpsertOptions{
		Overwrite:         boolParam(q.Get("overwrite")),
		ReplaceTags:       boolParam(q.Get("replace_tags")),
		ReplaceCategories: boolParam(q.Get("replace_categories")),
	}

	report, err := h.imports.Import(r.Context(), text, opts)
	if err != nil {
		// A chunk failure mid-run still applied earlier chunks, so the
		// report goes back with the error details instead of a bare 500.
		h.logger.Error().Err(err).Int("applied", report.Write.Applied).Msg("import failed")
		writeJSON(w, http.StatusInternalServerError, report)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Template handles GET /api/admin/template requests and serves the
// header-only CSV template as a download.
func (h *AdminHandler) Template(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	writeCSV(w, ingest.TemplateFilename, h.imports.Template())
}

// Export handles GET /api/admin/export requests. The same filter parameters
// as the browse endpoint narrow the exported rows.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	data, err := h.imports.Export(r.Context(), filterFromQuery(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeCSV(w, "products_export.csv", data)
}

// TagsAdd handles POST /api/admin/tags/add requests.
func (h *AdminHandler) TagsAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.bulk.AddTags(r.Context(), req.IDs, req.Tags)
	h.writeBulk(w, result, err)
}

// TagsRemove handles POST /api/admin/tags/remove requests.
func (h *AdminHandler) TagsRemove(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.bulk.RemoveTags(r.Context(), req.IDs, req.Tags)
	h.writeBulk(w, result, err)
}

// SetCategory handles POST /api/admin/category requests.
func (h *AdminHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.bulk.SetCategory(r.Context(), req.IDs, req.L1, req.L2)
	h.writeBulk(w, result, err)
}

// Delete handles POST /api/admin/delete requests.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.bulk.Delete(r.Context(), req.IDs)
	h.writeBulk(w, result, err)
}

func (h *AdminHandler) decodeBulk(w http.ResponseWriter, r *http.Request) (bulkRequest, bool) {
	var req bulkRequest
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return req, false
	}
	return req, true
}

// writeBulk renders a bulk mutation outcome. A mid-run failure is reported
// with the partial result rather than discarded.
func (h *AdminHandler) writeBulk(w http.ResponseWriter, result model.BulkResult, err error) {
	if err != nil {
		if result.Partial {
			h.logger.Error().
				Int("applied", result.Applied).
				Int("failed_at", result.FailedAt).
				Msg("bulk mutation partially applied")
			writeJSON(w, http.StatusInternalServerError, result)
			return
		}
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
			asciiFilename(filename), url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// asciiFilename supplies the plain filename parameter for clients that do
// not understand the RFC 5987 encoded form.
func asciiFilename(filename string) string {
	for _, r := range filename {
		if r > 0x7e || r < 0x20 || r == '"' {
			return "download.csv"
		}
	}
	return filename
}
