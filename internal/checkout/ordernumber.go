package checkout

import (
	"fmt"
	"math/rand/v2"
)

const orderNumberPrefix = "#ORD-"

// NewOrderNumber draws a four-digit, zero-padded display reference.
// It is a customer-facing token only; the id assigned by the backend
// at order creation is the authoritative identifier.
func NewOrderNumber() string {
	return fmt.Sprintf("%s%04d", orderNumberPrefix, rand.IntN(10000))
}
