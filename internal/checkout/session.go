package checkout

import (
	"time"

	"storefront-checkout/internal/model"
)

// Session is one in-progress checkout transaction. It is created when the
// user enters checkout with a staged snapshot and ends at confirmation or
// abandonment.
type Session struct {
	ID        string
	UserEmail string
	Step      Step

	Items   []model.LineItem
	ItemIDs []string

	Shipping        model.ShippingForm
	AddressMode     model.AddressMode
	HasSavedAddress bool

	PaymentMethodID string

	OrderNumber   string
	ServerOrderID string
	DeliveryFrom  time.Time
	DeliveryTo    time.Time
	Instructions  string

	Processing bool
	LastError  string

	CreatedAt time.Time
}

// ShippingIncluded reports whether the shipping form travels with the
// order payload: only when no saved address applies or the user chose to
// enter a new one.
func (s *Session) ShippingIncluded() bool {
	return !s.HasSavedAddress || s.AddressMode == model.AddressModeNew
}
