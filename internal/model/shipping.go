package model

// DefaultCountry is the single market the storefront currently ships to.
const DefaultCountry = "Sri Lanka"

// Provinces are the country's administrative provinces.
var Provinces = []string{
	"Western",
	"Central",
	"Southern",
	"Northern",
	"Eastern",
	"North Western",
	"North Central",
	"Uva",
	"Sabaragamuwa",
}

// AddressMode picks which shipping-address track is in effect.
type AddressMode string

const (
	// AddressModeSaved edits the address previously stored server-side.
	AddressModeSaved AddressMode = "saved"
	// AddressModeNew starts from a blank form.
	AddressModeNew AddressMode = "new"
)

func (m AddressMode) Valid() bool {
	return m == AddressModeSaved || m == AddressModeNew
}

// ShippingForm is the destination/contact record for delivery.
type ShippingForm struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Country      string `json:"country"`
	Address      string `json:"address"`
	Apartment    string `json:"apartment,omitempty"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Phone        string `json:"phone"`
	UseAsBilling bool   `json:"use_as_billing"`
}

// DefaultShippingForm returns a blank form with the country pre-filled.
func DefaultShippingForm() ShippingForm {
	return ShippingForm{Country: DefaultCountry}
}

// MissingFields lists the required fields that are still empty. The
// shipping step may only advance when this is empty.
func (f *ShippingForm) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"address", f.Address},
		{"city", f.City},
		{"province", f.Province},
		{"postal_code", f.PostalCode},
		{"phone", f.Phone},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}
