package model

import "github.com/shopspring/decimal"

// LineItem is one product entry staged for purchase. It is a frozen copy
// of what the cart page recorded: read-only for the duration of checkout,
// cleared only after a successful order commit.
type LineItem struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	OldPrice  *decimal.Decimal `json:"old_price,omitempty"`
	Image     string           `json:"image"`
	Quantity  int              `json:"quantity"`
	Discount  int              `json:"discount"`
	StoreName string           `json:"store_name"`
	Category  string           `json:"category"`
	Color     string           `json:"color"`
	Size      string           `json:"size"`
	Stock     int              `json:"stock"`
	Selected  bool             `json:"selected"`
}

// ItemIDs collects the identifiers later needed for cart cleanup.
func ItemIDs(items []LineItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
