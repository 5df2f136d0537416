package cart

import (
	"github.com/shopspring/decimal"

	"github.com/boolen-kitchen/api/internal/model"
)

// DefaultBundleDiscount is the closing-time bundle discount fraction.
var DefaultBundleDiscount = decimal.RequireFromString("0.35")

// Bundle marks items as closing-bundle units at a discounted unit price.
// The resulting items carry bundle line identities, keeping them separate
// from any full-price lines already in the cart.
func Bundle(items []Item, discount decimal.Decimal) []Item {
	factor := decimal.NewFromInt(1).Sub(discount)
	out := make([]Item, len(items))
	for i, it := range items {
		it.Bundle = true
		it.UnitPrice = model.NewMoney(it.UnitPrice.Decimal().Mul(factor)).Round2()
		out[i] = it
	}
	return out
}
