package model

import "github.com/shopspring/decimal"

// Wire shapes for the storefront backend API.

type AddressLookupResult struct {
	BillingAddress *ShippingForm `json:"billing_address"`
}

// OrderPayload is the order-creation request body.
type OrderPayload struct {
	Items        []LineItem      `json:"ordered_items"`
	OrderNumber  string          `json:"order_number"`
	DeliveryDate string          `json:"delivery_date"`
	Note         string          `json:"note,omitempty"`
	TotalFee     decimal.Decimal `json:"total_fee"`
	Email        string          `json:"email"`
	// Shipping travels only when no saved address applies or the user
	// entered a new one.
	Shipping *ShippingForm `json:"shipping_data,omitempty"`
}

type CreateOrderResult struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
}

func (r *CreateOrderResult) Success() bool {
	return r.Status == "success"
}

// RemoveCartItemsRequest asks the backend to drop the ordered items from
// the user's persisted cart.
type RemoveCartItemsRequest struct {
	Email   string   `json:"email"`
	ItemIDs []string `json:"item_ids"`
}
