package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boolen-kitchen/api/internal/model"
)

// FinanceServicer defines the service methods needed by financial handlers.
type FinanceServicer interface {
	Summary(ctx context.Context) (model.FinancialSummary, error)
	RecomputeSummary(ctx context.Context) (model.FinancialSummary, error)
}

// FinanceHandler serves the revenue summary.
type FinanceHandler struct {
	svc FinanceServicer
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(svc FinanceServicer) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// RegisterMerchantRoutes registers the authenticated financial endpoints.
func (h *FinanceHandler) RegisterMerchantRoutes(r chi.Router) {
	r.Get("/financials", h.Get)
	r.Post("/financials/recompute", h.Recompute)
}

// Get serves the running financial summary.
func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Recompute rebuilds the summary from the stored orders, repairing drift
// left by administrative deletions.
func (h *FinanceHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.RecomputeSummary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
