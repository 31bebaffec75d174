package checkout

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderNumberPattern = regexp.MustCompile(`^#ORD-\d{4}$`)

func TestNewOrderNumber_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := NewOrderNumber()
		assert.Regexp(t, orderNumberPattern, n)
	}
}
