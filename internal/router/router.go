package router

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/authz"
	"github.com/Holly45vd/products/internal/handler"
	"github.com/Holly45vd/products/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	savedHandler *handler.SavedHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	policy *authz.Policy,
	jwtSecret string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public catalogue routes. Identity is optional here: an authenticated
	// caller gets the saved dimension, everyone else browses anonymously.
	mux.HandleFunc("/api/products", productHandler.List)
	mux.HandleFunc("/api/categories", productHandler.Categories)

	requireUser := middleware.RequireUser
	requireAdmin := middleware.RequireAdmin(policy, logger)

	// Saved-products routes
	savedRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && (r.URL.Path == "/api/saved" || r.URL.Path == "/api/saved/") {
			savedHandler.List(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/saved/") && r.URL.Path != "/api/saved/" {
			switch r.Method {
			case http.MethodPut, http.MethodPost:
				savedHandler.Save(w, r)
			case http.MethodDelete:
				savedHandler.Unsave(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.Handle("/api/saved", requireUser(http.HandlerFunc(savedRouteHandler)))
	mux.Handle("/api/saved/", requireUser(http.HandlerFunc(savedRouteHandler)))

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			switch r.Method {
			case http.MethodPost:
				orderHandler.Create(w, r)
			case http.MethodGet:
				orderHandler.List(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/orders/") {
			switch r.Method {
			case http.MethodGet:
				orderHandler.GetByID(w, r)
			case http.MethodDelete:
				orderHandler.Delete(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.Handle("/api/orders", requireUser(http.HandlerFunc(orderRouteHandler)))
	mux.Handle("/api/orders/", requireUser(http.HandlerFunc(orderRouteHandler)))

	// Admin routes
	mux.Handle("/api/admin/import", requireAdmin(http.HandlerFunc(adminHandler.Import)))
	mux.Handle("/api/admin/template", requireAdmin(http.HandlerFunc(adminHandler.Template)))
	mux.Handle("/api/admin/export", requireAdmin(http.HandlerFunc(adminHandler.Export)))
	mux.Handle("/api/admin/tags/add", requireAdmin(http.HandlerFunc(adminHandler.TagsAdd)))
	mux.Handle("/api/admin/tags/remove", requireAdmin(http.HandlerFunc(adminHandler.TagsRemove)))
	mux.Handle("/api/admin/category", requireAdmin(http.HandlerFunc(adminHandler.SetCategory)))
	mux.Handle("/api/admin/delete", requireAdmin(http.HandlerFunc(adminHandler.Delete)))

	// Apply middleware in order: Recovery -> Logging -> CORS -> BearerAuth
	var h http.Handler = mux
	h = middleware.BearerAuth(jwtSecret, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
