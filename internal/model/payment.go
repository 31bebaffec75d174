package model

// PaymentMethod is a selectable payment option. The fee is a flat
// surcharge, not a percentage.
type PaymentMethod struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Available bool    `json:"available"`
	Fee       float64 `json:"fee"`
}

const DefaultPaymentMethodID = "cod"

// paymentMethods is the static enumeration; card brands are not live yet.
var paymentMethods = []PaymentMethod{
	{ID: "cod", Name: "Cash on Delivery", Icon: "cod.svg", Available: true, Fee: 350},
	{ID: "visa", Name: "Visa", Icon: "visa.svg", Available: false, Fee: 0},
	{ID: "mastercard", Name: "Mastercard", Icon: "mastercard.svg", Available: false, Fee: 0},
}

// PaymentMethods returns a copy of the enumeration.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

func PaymentMethodByID(id string) (PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
