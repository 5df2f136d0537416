package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boolen-kitchen/api/internal/model"
)

// HoursServicer defines the service methods needed by hours handlers.
type HoursServicer interface {
	Hours(ctx context.Context) (model.BusinessHours, error)
	Replace(ctx context.Context, h model.BusinessHours) error
}

// HoursHandler handles business-hours endpoints.
type HoursHandler struct {
	svc HoursServicer
}

// NewHoursHandler creates a new HoursHandler.
func NewHoursHandler(svc HoursServicer) *HoursHandler {
	return &HoursHandler{svc: svc}
}

// RegisterPublicRoutes registers the customer-facing read endpoint.
func (h *HoursHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/hours", h.Get)
}

// RegisterMerchantRoutes registers the authenticated write endpoint.
func (h *HoursHandler) RegisterMerchantRoutes(r chi.Router) {
	r.Put("/hours", h.Update)
}

// Get serves the stored opening hours.
func (h *HoursHandler) Get(w http.ResponseWriter, r *http.Request) {
	hours, err := h.svc.Hours(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

// Update replaces the opening hours for the full week.
func (h *HoursHandler) Update(w http.ResponseWriter, r *http.Request) {
	var hours model.BusinessHours
	if err := json.NewDecoder(r.Body).Decode(&hours); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Replace(r.Context(), hours); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
