package checkout

import (
	"fmt"
	"time"
)

const (
	deliveryMinDays = 5
	deliveryMaxDays = 7
)

// DeliveryWindow computes the estimated delivery range from a reference
// time. Purely presentational; the backend owns the real schedule.
func DeliveryWindow(now time.Time) (from, to time.Time) {
	return now.AddDate(0, 0, deliveryMinDays), now.AddDate(0, 0, deliveryMaxDays)
}

// FormatDeliveryWindow renders the range the way the storefront shows it,
// e.g. "Sep 04 - Sep 06, 2026".
func FormatDeliveryWindow(from, to time.Time) string {
	return fmt.Sprintf("%s - %s", from.Format("Jan 02"), to.Format("Jan 02, 2006"))
}
