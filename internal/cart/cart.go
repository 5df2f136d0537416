// Package cart implements the customer cart as a pure value type: every
// operation returns a new cart and derived values are recomputed on demand,
// so nothing can desync.
package cart

import "github.com/boolen-kitchen/api/internal/model"

// Item is a catalog reference being added to or removed from a cart.
type Item struct {
	ID        model.ID
	Name      string
	UnitPrice model.Money
	Bundle    bool
}

// LineID is the cart-line identity for the item. Closing-bundle units get
// a distinct identity so a discounted unit never merges into, and silently
// discounts, a full-price line of the same menu item.
func (i Item) LineID() string {
	if i.Bundle {
		return i.ID.String() + ":bundle"
	}
	return i.ID.String()
}

// Line pairs an item reference with a quantity and the unit price captured
// when the item was first added. The captured price survives later catalog
// price changes.
type Line struct {
	LineID    string      `json:"lineId"`
	ItemID    model.ID    `json:"itemId"`
	Name      string      `json:"name"`
	UnitPrice model.Money `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
}

// Cart is an ordered set of lines, at most one per line identity.
type Cart []Line

// Add returns a new cart with one more unit of item. An item already in
// the cart has its quantity incremented rather than gaining a second line.
func Add(c Cart, item Item) Cart {
	next := clone(c)
	id := item.LineID()
	for i := range next {
		if next[i].LineID == id {
			next[i].Quantity++
			return next
		}
	}
	return append(next, Line{
		LineID:    id,
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	})
}

// Remove returns a new cart with one unit of item removed. The line is
// dropped when its quantity reaches zero; removing an absent item is a
// no-op.
func Remove(c Cart, item Item) Cart {
	id := item.LineID()
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.LineID == id {
			if line.Quantity > 1 {
				line.Quantity--
				next = append(next, line)
			}
			continue
		}
		next = append(next, line)
	}
	return next
}

// Clear returns an empty cart.
func Clear(Cart) Cart { return Cart{} }

// Subtotal is the sum of unit price times quantity across all lines.
func Subtotal(c Cart) model.Money {
	var sum model.Money
	for _, line := range c {
		sum = sum.Add(line.UnitPrice.MulInt(line.Quantity))
	}
	return sum
}

// Count is the total number of units in the cart.
func Count(c Cart) int {
	var n int
	for _, line := range c {
		n += line.Quantity
	}
	return n
}

func clone(c Cart) Cart {
	return append(Cart(nil), c...)
}
