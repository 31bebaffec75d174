package dto

import (
	"storefront-checkout/internal/checkout"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/pricing"
)

type StageRequest struct {
	Items []model.LineItem `json:"items"`
}

type ShippingRequest struct {
	Shipping model.ShippingForm `json:"shipping"`
}

type PaymentRequest struct {
	MethodID string `json:"method_id"`
}

type AddressModeRequest struct {
	Mode string `json:"mode"`
}

type ConfirmRequest struct {
	Instructions string `json:"instructions"`
}

type EditRequest struct {
	Step string `json:"step"`
}

type SessionResponse struct {
	ID              string             `json:"id"`
	Step            string             `json:"step"`
	Items           []model.LineItem   `json:"items"`
	Shipping        model.ShippingForm `json:"shipping"`
	AddressMode     string             `json:"address_mode"`
	HasSavedAddress bool               `json:"has_saved_address"`
	PaymentMethodID string             `json:"payment_method_id"`
	OrderNumber     string             `json:"order_number"`
	ServerOrderID   string             `json:"server_order_id,omitempty"`
	DeliveryWindow  string             `json:"delivery_window"`
	Instructions    string             `json:"instructions,omitempty"`
	Processing      bool               `json:"processing"`
	LastError       string             `json:"last_error,omitempty"`

	Subtotal string `json:"subtotal"`
	Fee      string `json:"fee"`
	Total    string `json:"total"`
}

// NewSessionResponse flattens a session plus its derived totals into the
// API shape. Totals are recomputed here on every read; the calculation is
// pure.
func NewSessionResponse(s *checkout.Session) *SessionResponse {
	method, _ := model.PaymentMethodByID(s.PaymentMethodID)

	return &SessionResponse{
		ID:              s.ID,
		Step:            s.Step.String(),
		Items:           s.Items,
		Shipping:        s.Shipping,
		AddressMode:     string(s.AddressMode),
		HasSavedAddress: s.HasSavedAddress,
		PaymentMethodID: s.PaymentMethodID,
		OrderNumber:     s.OrderNumber,
		ServerOrderID:   s.ServerOrderID,
		DeliveryWindow:  checkout.FormatDeliveryWindow(s.DeliveryFrom, s.DeliveryTo),
		Instructions:    s.Instructions,
		Processing:      s.Processing,
		LastError:       s.LastError,
		Subtotal:        pricing.Subtotal(s.Items).StringFixed(2),
		Fee:             pricing.MethodFee(method).StringFixed(2),
		Total:           pricing.Total(s.Items, method).StringFixed(2),
	}
}
