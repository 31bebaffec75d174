// Package pricing derives monetary totals from session state. All
// functions are pure and safe to recompute on every request; amounts use
// decimal arithmetic rather than floats.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"storefront-checkout/internal/model"
)

// LegacyFee is the fallback surcharge applied when a payment method
// carries a fee that is not a finite number.
var LegacyFee = decimal.NewFromInt(200)

// Subtotal sums unit price times quantity over all staged items. Any
// per-item discount was already applied before staging, so the price
// field is used as-is.
func Subtotal(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// MethodFee returns the flat fee of the selected payment method, or
// LegacyFee when the stored fee is NaN or infinite.
func MethodFee(method model.PaymentMethod) decimal.Decimal {
	if math.IsNaN(method.Fee) || math.IsInf(method.Fee, 0) {
		return LegacyFee
	}
	return decimal.NewFromFloat(method.Fee)
}

// Total is subtotal plus the payment fee. No taxes, no per-item shipping.
func Total(items []model.LineItem, method model.PaymentMethod) decimal.Decimal {
	return Subtotal(items).Add(MethodFee(method))
}
