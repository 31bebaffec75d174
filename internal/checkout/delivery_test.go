package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryWindow(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)

	from, to := DeliveryWindow(now)

	assert.Equal(t, time.Date(2026, time.September, 4, 10, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.September, 6, 10, 0, 0, 0, time.UTC), to)
	assert.Equal(t, "Sep 04 - Sep 06, 2026", FormatDeliveryWindow(from, to))
}

func TestDeliveryWindow_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, time.December, 29, 0, 0, 0, 0, time.UTC)

	from, to := DeliveryWindow(now)

	assert.Equal(t, "Jan 03 - Jan 05, 2027", FormatDeliveryWindow(from, to))
}
