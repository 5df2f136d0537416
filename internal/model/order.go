package model

import "time"

// OrderItem is a snapshot of a cart line at checkout. It copies the item's
// name and unit price so later menu edits never retroactively alter a
// placed order.
type OrderItem struct {
	ItemID    ID     `json:"itemId"`
	LineID    string `json:"lineId,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
}

// Subtotal is unit price times quantity.
func (i OrderItem) Subtotal() Money {
	return i.UnitPrice.MulInt(i.Quantity)
}

// Order is a placed purchase. The item snapshot and total are immutable
// once created; only the status field changes afterwards.
type Order struct {
	ID           ID          `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	Items        []OrderItem `json:"items"`
	CustomerName string      `json:"customerName"`
	Address      string      `json:"address"`
	DeliveryType string      `json:"deliveryType"`
	Total        Money       `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}
