package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront-checkout/internal/model"
)

func TestSubtotal_HappyPath(t *testing.T) {
	items := []model.LineItem{
		{ID: "item-1", Price: decimal.NewFromInt(1000), Quantity: 2, Discount: 0},
	}

	cod, ok := model.PaymentMethodByID("cod")
	assert.True(t, ok)

	assert.True(t, Subtotal(items).Equal(decimal.NewFromInt(2000)))
	assert.True(t, MethodFee(cod).Equal(decimal.NewFromInt(350)))
	assert.True(t, Total(items, cod).Equal(decimal.NewFromInt(2350)))
}

func TestSubtotal_IgnoresDiscountField(t *testing.T) {
	// Discounts were applied before staging; subtotal uses price as-is.
	items := []model.LineItem{
		{ID: "item-1", Price: decimal.NewFromInt(500), Quantity: 3, Discount: 20},
	}

	assert.True(t, Subtotal(items).Equal(decimal.NewFromInt(1500)))
}

func TestSubtotal_EmptySnapshot(t *testing.T) {
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestMethodFee_FallbackWhenNotFinite(t *testing.T) {
	nan := model.PaymentMethod{ID: "corrupt", Fee: math.NaN()}
	inf := model.PaymentMethod{ID: "corrupt", Fee: math.Inf(1)}
	cod := model.PaymentMethod{ID: "cod", Fee: 350}

	assert.True(t, MethodFee(nan).Equal(LegacyFee))
	assert.True(t, MethodFee(inf).Equal(LegacyFee))
	assert.True(t, MethodFee(cod).Equal(decimal.NewFromInt(350)))
}

func TestPricing_Idempotent(t *testing.T) {
	items := []model.LineItem{
		{ID: "item-1", Price: decimal.NewFromFloat(199.99), Quantity: 3},
		{ID: "item-2", Price: decimal.NewFromInt(1250), Quantity: 1},
	}
	cod, _ := model.PaymentMethodByID("cod")

	first := Total(items, cod)
	second := Total(items, cod)

	assert.True(t, first.Equal(second))
	assert.Equal(t, "1949.97", Total(items, cod).Sub(MethodFee(cod)).Sub(decimal.NewFromInt(1250)).StringFixed(2))
}

func TestPricing_DecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 style inputs must not drift the way float math does.
	items := []model.LineItem{
		{ID: "item-1", Price: decimal.NewFromFloat(0.1), Quantity: 1},
		{ID: "item-2", Price: decimal.NewFromFloat(0.2), Quantity: 1},
	}

	assert.Equal(t, "0.30", Subtotal(items).StringFixed(2))
}
