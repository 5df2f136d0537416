package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boolen-kitchen/api/internal/model"
)

// MenuServicer defines the service methods needed by menu handlers.
// Satisfied by *service.MenuService; narrow interface for testability.
type MenuServicer interface {
	Catalog(ctx context.Context) (model.MenuCatalog, error)
	Replace(ctx context.Context, cat model.MenuCatalog) (model.MenuCatalog, error)
}

// MenuHandler handles catalog endpoints.
type MenuHandler struct {
	svc MenuServicer
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(svc MenuServicer) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// RegisterPublicRoutes registers the customer-facing read endpoint.
func (h *MenuHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/menu", h.Get)
}

// RegisterMerchantRoutes registers the authenticated write endpoint.
func (h *MenuHandler) RegisterMerchantRoutes(r chi.Router) {
	r.Put("/menu", h.Update)
}

// Get serves the full catalog.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	cat, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// Update replaces the full catalog. Clients refetch the catalog to see
// server-assigned ids.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cat model.MenuCatalog
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.svc.Replace(r.Context(), cat); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
