package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boolen-kitchen/api/internal/enum"
	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/store"
)

// Flat delivery fee schedule. Not distance-based in this version.
var (
	bikeFee   = model.MustMoney("1.99")
	driverFee = model.MustMoney("4.99")
)

// Errors returned by the order service.
var (
	ErrCustomerNameRequired = errors.New("customerName is required")
	ErrAddressRequired      = errors.New("address is required")
	ErrEmptyItems           = errors.New("items are required")
	ErrInvalidDeliveryType  = errors.New("invalid deliveryType")
	ErrInvalidQuantity      = errors.New("quantity must be > 0")
	ErrInvalidUnitPrice     = errors.New("invalid unitPrice")
	ErrStatusRequired       = errors.New("status is required")
	ErrOrderNotFound        = errors.New("order not found")
)

// DeliveryFee returns the flat fee for a delivery type.
func DeliveryFee(deliveryType string) (model.Money, error) {
	switch deliveryType {
	case enum.DeliveryTypeBike:
		return bikeFee, nil
	case enum.DeliveryTypeDriver:
		return driverFee, nil
	}
	return model.Money{}, ErrInvalidDeliveryType
}

// PlaceOrderRequest is the validated input for creating an order.
type PlaceOrderRequest struct {
	CustomerName string
	Address      string
	DeliveryType string
	Items        []OrderItemRequest
}

// OrderItemRequest is a single cart line at checkout. The unit price is the
// price captured when the line entered the cart, which may differ from the
// current catalog price (closing-bundle discounts).
type OrderItemRequest struct {
	ItemID    model.ID
	LineID    string
	Name      string
	Quantity  int
	UnitPrice model.Money
}

// OrderService owns the order lifecycle: creation, status progression,
// cancellation, and administrative deletion.
type OrderService struct {
	store store.Store
}

// NewOrderService creates a new OrderService.
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st}
}

// Place validates the checkout request and persists the resulting order.
// The order always starts at pending; the total is recomputed here from
// the item snapshot plus the delivery fee, never trusted from the client.
// The order append and the financial summary update commit in the same
// write, so a storage failure leaves neither applied.
func (s *OrderService) Place(ctx context.Context, req PlaceOrderRequest) (model.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return model.Order{}, ErrCustomerNameRequired
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return model.Order{}, ErrAddressRequired
	}
	fee, err := DeliveryFee(req.DeliveryType)
	if err != nil {
		return model.Order{}, err
	}
	if len(req.Items) == 0 {
		return model.Order{}, ErrEmptyItems
	}

	var subtotal model.Money
	items := make([]model.OrderItem, 0, len(req.Items))
	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return model.Order{}, fmt.Errorf("items[%d]: %w", i, ErrInvalidQuantity)
		}
		if it.UnitPrice.Invalid() || it.UnitPrice.IsNegative() {
			return model.Order{}, fmt.Errorf("items[%d]: %w", i, ErrInvalidUnitPrice)
		}
		line := model.OrderItem{
			ItemID:    it.ItemID,
			LineID:    it.LineID,
			Name:      strings.TrimSpace(it.Name),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.Round2(),
		}
		subtotal = subtotal.Add(line.Subtotal())
		items = append(items, line)
	}

	order := model.Order{
		ID:           model.NewID(),
		Items:        items,
		CustomerName: name,
		Address:      address,
		DeliveryType: req.DeliveryType,
		Total:        subtotal.Add(fee).Round2(),
		Status:       enum.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.store.Update(ctx, func(doc *store.Document) error {
		doc.OrderSeq++
		order.OrderNumber = fmt.Sprintf("BK-%05d", doc.OrderSeq)
		// Newest first, matching the merchant view's expectations.
		doc.Orders = append([]model.Order{order}, doc.Orders...)
		doc.Financials = Apply(doc.Financials, order.Total)
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := s.store.View(ctx, func(doc *store.Document) error {
		out = append([]model.Order(nil), doc.Orders...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves an order to the requested status after checking the
// transition against the state machine. The item snapshot and total are
// never touched.
func (s *OrderService) UpdateStatus(ctx context.Context, id model.ID, status string) (model.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return model.Order{}, ErrStatusRequired
	}

	var updated model.Order
	err := s.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID != id {
				continue
			}
			if err := ValidateTransition(doc.Orders[i].Status, status); err != nil {
				return err
			}
			doc.Orders[i].Status = status
			updated = doc.Orders[i]
			return nil
		}
		return ErrOrderNotFound
	})
	if err != nil {
		return model.Order{}, err
	}
	return updated, nil
}

// Advance moves an order one step along the linear flow.
func (s *OrderService) Advance(ctx context.Context, id model.ID) (model.Order, error) {
	var updated model.Order
	err := s.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID != id {
				continue
			}
			next, err := NextStatus(doc.Orders[i].Status)
			if err != nil {
				return err
			}
			doc.Orders[i].Status = next
			updated = doc.Orders[i]
			return nil
		}
		return ErrOrderNotFound
	})
	if err != nil {
		return model.Order{}, err
	}
	return updated, nil
}

// Cancel forces a non-terminal order to cancelled.
func (s *OrderService) Cancel(ctx context.Context, id model.ID) (model.Order, error) {
	return s.UpdateStatus(ctx, id, enum.OrderStatusCancelled)
}

// Delete removes an order unconditionally. The financial summary is not
// reconciled here; FinanceService.RecomputeSummary is the repair path.
func (s *OrderService) Delete(ctx context.Context, id model.ID) error {
	return s.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == id {
				doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
				return nil
			}
		}
		return ErrOrderNotFound
	})
}
