package checkout

import "errors"

var (
	// ErrNothingStaged means no checkout snapshot exists for the user;
	// the caller should send them back to the cart.
	ErrNothingStaged = errors.New("no items staged for checkout")

	ErrSessionNotFound    = errors.New("checkout session not found")
	ErrInvalidQuantity    = errors.New("quantity out of range")
	ErrInvalidTransition  = errors.New("invalid step transition")
	ErrMissingFields      = errors.New("required shipping fields missing")
	ErrUnknownMethod      = errors.New("unknown payment method")
	ErrMethodUnavailable  = errors.New("payment method not available")
	ErrInvalidAddressMode = errors.New("invalid address mode")

	// ErrAlreadyProcessing guards against a double submit while the
	// commit sequence is in flight.
	ErrAlreadyProcessing = errors.New("order submission already in progress")

	ErrCommitFailed = errors.New("order commit failed")
)
