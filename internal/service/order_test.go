package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/boolen-kitchen/api/internal/enum"
	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return s
}

func checkoutRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		CustomerName: "John Smith",
		Address:      "123 Main St, Davis, CA",
		DeliveryType: enum.DeliveryTypeBike,
		Items: []OrderItemRequest{
			{ItemID: "item-1", Name: "Classic Burger", Quantity: 2, UnitPrice: model.MustMoney("12.99")},
			{ItemID: "item-2", Name: "Iced Lemonade", Quantity: 1, UnitPrice: model.MustMoney("4.99")},
		},
	}
}

func TestPlaceComputesTotalWithBikeFee(t *testing.T) {
	svc := NewOrderService(newTestStore(t))

	order, err := svc.Place(context.Background(), checkoutRequest())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	// 12.99*2 + 4.99 = 30.97 subtotal, + 1.99 bike fee
	if got := order.Total.String(); got != "32.96" {
		t.Fatalf("total = %s, want 32.96", got)
	}
	if order.Status != enum.OrderStatusPending {
		t.Fatalf("status = %q, want pending", order.Status)
	}
	if order.ID == "" {
		t.Fatal("no id assigned")
	}
	if order.OrderNumber != "BK-00001" {
		t.Fatalf("orderNumber = %q, want BK-00001", order.OrderNumber)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("createdAt not set")
	}
}

func TestPlaceComputesTotalWithDriverFee(t *testing.T) {
	svc := NewOrderService(newTestStore(t))

	req := checkoutRequest()
	req.DeliveryType = enum.DeliveryTypeDriver
	order, err := svc.Place(context.Background(), req)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if got := order.Total.String(); got != "35.96" {
		t.Fatalf("total = %s, want 35.96 (subtotal 30.97 + 4.99)", got)
	}
}

func TestPlaceValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlaceOrderRequest)
		wantErr error
	}{
		{"empty name", func(r *PlaceOrderRequest) { r.CustomerName = "   " }, ErrCustomerNameRequired},
		{"empty address", func(r *PlaceOrderRequest) { r.Address = "" }, ErrAddressRequired},
		{"empty cart", func(r *PlaceOrderRequest) { r.Items = nil }, ErrEmptyItems},
		{"bad delivery type", func(r *PlaceOrderRequest) { r.DeliveryType = "drone" }, ErrInvalidDeliveryType},
		{"zero quantity", func(r *PlaceOrderRequest) { r.Items[0].Quantity = 0 }, ErrInvalidQuantity},
		{"negative price", func(r *PlaceOrderRequest) { r.Items[0].UnitPrice = model.MustMoney("-1") }, ErrInvalidUnitPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			svc := NewOrderService(st)

			req := checkoutRequest()
			tt.mutate(&req)
			_, err := svc.Place(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}

			// Nothing committed: no order, no financial update.
			err = st.View(context.Background(), func(doc *store.Document) error {
				if len(doc.Orders) != 0 {
					t.Fatalf("order created despite validation failure")
				}
				if doc.Financials.TotalOrders != 0 {
					t.Fatalf("financials updated despite validation failure")
				}
				return nil
			})
			if err != nil {
				t.Fatalf("view: %v", err)
			}
		})
	}
}

func TestPlaceUpdatesFinancialsAtomically(t *testing.T) {
	st := newTestStore(t)
	svc := NewOrderService(st)
	ctx := context.Background()

	totals := []string{"32.96", "35.96", "10.43"}
	reqs := []PlaceOrderRequest{checkoutRequest(), checkoutRequest(), checkoutRequest()}
	reqs[1].DeliveryType = enum.DeliveryTypeDriver
	reqs[2].Items = []OrderItemRequest{{ItemID: "item-3", Name: "Bundle Cake", Quantity: 1, UnitPrice: model.MustMoney("8.44")}}

	for i, req := range reqs {
		order, err := svc.Place(ctx, req)
		if err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		if order.Total.String() != totals[i] {
			t.Fatalf("order %d total = %s, want %s", i, order.Total.String(), totals[i])
		}
	}

	err := st.View(ctx, func(doc *store.Document) error {
		if doc.Financials.TotalOrders != 3 {
			t.Fatalf("totalOrders = %d, want 3", doc.Financials.TotalOrders)
		}
		// 32.96 + 35.96 + 10.43 = 79.35
		if got := doc.Financials.TotalRevenue.String(); got != "79.35" {
			t.Fatalf("totalRevenue = %s, want 79.35", got)
		}
		// 79.35 / 3 = 26.45
		if got := doc.Financials.AvgOrderValue.String(); got != "26.45" {
			t.Fatalf("avgOrderValue = %s, want 26.45", got)
		}
		// Newest first.
		if len(doc.Orders) != 3 || doc.Orders[0].Total.String() != "10.43" {
			t.Fatalf("orders not newest-first: %+v", doc.Orders)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestPlaceAssignsSequentialOrderNumbers(t *testing.T) {
	svc := NewOrderService(newTestStore(t))
	ctx := context.Background()

	first, err := svc.Place(ctx, checkoutRequest())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	second, err := svc.Place(ctx, checkoutRequest())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if first.OrderNumber != "BK-00001" || second.OrderNumber != "BK-00002" {
		t.Fatalf("order numbers = %q, %q", first.OrderNumber, second.OrderNumber)
	}
	if first.ID == second.ID {
		t.Fatal("order ids collide")
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewOrderService(newTestStore(t))
	_, err := svc.UpdateStatus(context.Background(), "999999", enum.OrderStatusPreparing)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("got %v, want ErrOrderNotFound", err)
	}
}

func TestDeleteRemovesWithoutReconciliation(t *testing.T) {
	st := newTestStore(t)
	svc := NewOrderService(st)
	ctx := context.Background()

	order, err := svc.Place(ctx, checkoutRequest())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := svc.Delete(ctx, order.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err = st.View(ctx, func(doc *store.Document) error {
		if len(doc.Orders) != 0 {
			t.Fatalf("order not deleted")
		}
		// Deliberately unreconciled; RecomputeSummary is the repair path.
		if doc.Financials.TotalOrders != 1 {
			t.Fatalf("delete reconciled financials, totalOrders = %d", doc.Financials.TotalOrders)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	if err := svc.Delete(ctx, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("second delete: got %v, want ErrOrderNotFound", err)
	}
}

func TestOrderLifecycleScenario(t *testing.T) {
	// Classic Burger x2 + Iced Lemonade, bike delivery: total 32.96,
	// advance twice to ready, cancel from ready, then no further moves.
	svc := NewOrderService(newTestStore(t))
	ctx := context.Background()

	order, err := svc.Place(ctx, checkoutRequest())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.Total.String() != "32.96" || order.Status != enum.OrderStatusPending {
		t.Fatalf("order = total %s status %s", order.Total.String(), order.Status)
	}

	order, err = svc.Advance(ctx, order.ID)
	if err != nil || order.Status != enum.OrderStatusPreparing {
		t.Fatalf("first advance: %v, status %q", err, order.Status)
	}
	order, err = svc.Advance(ctx, order.ID)
	if err != nil || order.Status != enum.OrderStatusReady {
		t.Fatalf("second advance: %v, status %q", err, order.Status)
	}

	order, err = svc.Cancel(ctx, order.ID)
	if err != nil || order.Status != enum.OrderStatusCancelled {
		t.Fatalf("cancel from ready: %v, status %q", err, order.Status)
	}

	if _, err := svc.Advance(ctx, order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("advance after cancel: got %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.Cancel(ctx, order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancel after cancel: got %v, want ErrInvalidTransition", err)
	}
}
