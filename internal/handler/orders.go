package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/service"
	"github.com/boolen-kitchen/api/internal/ws"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	Place(ctx context.Context, req service.PlaceOrderRequest) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id model.ID, status string) (model.Order, error)
	Delete(ctx context.Context, id model.ID) error
}

// OrderHandler handles order endpoints and publishes order events to the
// merchant WebSocket hub.
type OrderHandler struct {
	svc OrderServicer
	hub *ws.Hub
}

// NewOrderHandler creates a new OrderHandler. hub may be nil in tests.
func NewOrderHandler(svc OrderServicer, hub *ws.Hub) *OrderHandler {
	return &OrderHandler{svc: svc, hub: hub}
}

// RegisterPublicRoutes registers the customer-facing checkout endpoint.
func (h *OrderHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/orders", h.Create)
}

// RegisterMerchantRoutes registers the authenticated management endpoints.
func (h *OrderHandler) RegisterMerchantRoutes(r chi.Router) {
	r.Get("/orders", h.List)
	r.Patch("/orders/{id}", h.UpdateStatus)
	r.Delete("/orders/{id}", h.Delete)
}

type createOrderRequest struct {
	Items        []createOrderItemRequest `json:"items"`
	CustomerName string                   `json:"customerName"`
	Address      string                   `json:"address"`
	DeliveryType string                   `json:"deliveryType"`
}

type createOrderItemRequest struct {
	ItemID    model.ID    `json:"itemId"`
	LineID    string      `json:"lineId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice model.Money `json:"unitPrice"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Create handles checkout. Any client-sent total or status is ignored;
// both are computed server-side.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	placeReq := service.PlaceOrderRequest{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		DeliveryType: req.DeliveryType,
	}
	for _, it := range req.Items {
		placeReq.Items = append(placeReq.Items, service.OrderItemRequest{
			ItemID:    it.ItemID,
			LineID:    it.LineID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := h.svc.Place(r.Context(), placeReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.notify("order.created", order)
	writeJSON(w, http.StatusCreated, order)
}

// List serves all orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus moves an order through the workflow.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.notify("order.updated", order)
	writeJSON(w, http.StatusOK, order)
}

// Delete removes an order record.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	h.notify("order.deleted", map[string]model.ID{"id": id})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *OrderHandler) notify(eventType string, payload interface{}) {
	if h.hub == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.hub.Broadcast(ws.Event{Type: eventType, Payload: data})
}
