package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-checkout/internal/checkout"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/pricing"
	"storefront-checkout/internal/store"
)

type CheckoutService interface {
	StageItems(ctx context.Context, email string, items []model.LineItem) error
	Start(ctx context.Context, email string) (*checkout.Session, error)
	Get(ctx context.Context, sessionID string) (*checkout.Session, error)
	SubmitShipping(ctx context.Context, sessionID string, form model.ShippingForm) (*checkout.Session, error)
	SubmitPayment(ctx context.Context, sessionID string, methodID string) (*checkout.Session, error)
	Edit(ctx context.Context, sessionID string, target checkout.Step) (*checkout.Session, error)
	SetAddressMode(ctx context.Context, sessionID string, mode model.AddressMode) (*checkout.Session, error)
	Confirm(ctx context.Context, sessionID string, instructions string) (*checkout.Session, error)
}

type checkoutServiceImpl struct {
	backend       client.BackendClient
	snapshots     store.SnapshotRepository
	cart          store.CartRepository
	commitTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*checkout.Session

	now func() time.Time
}

// sessionTTL bounds how long an abandoned session is kept; expired
// entries are purged whenever a new session starts.
const sessionTTL = 30 * time.Minute

// snapshotOf returns a value copy taken under the service lock, so
// callers never share the live session with concurrent mutations.
func snapshotOf(sess *checkout.Session) *checkout.Session {
	copied := *sess
	return &copied
}

func NewCheckoutService(
	backend client.BackendClient,
	snapshots store.SnapshotRepository,
	cart store.CartRepository,
	commitTimeout time.Duration,
) CheckoutService {
	return &checkoutServiceImpl{
		backend:       backend,
		snapshots:     snapshots,
		cart:          cart,
		commitTimeout: commitTimeout,
		sessions:      make(map[string]*checkout.Session),
		now:           time.Now,
	}
}

// StageItems freezes the selected cart items into the checkout snapshot.
// Quantities are validated against the stock recorded at staging time;
// live stock is the backend's concern.
func (s *checkoutServiceImpl) StageItems(ctx context.Context, email string, items []model.LineItem) error {
	if len(items) == 0 {
		return checkout.ErrNothingStaged
	}
	for _, item := range items {
		if item.Quantity < 0 || item.Quantity > item.Stock {
			return fmt.Errorf("%w: item %s quantity %d stock %d",
				checkout.ErrInvalidQuantity, item.ID, item.Quantity, item.Stock)
		}
	}

	return s.snapshots.SaveStaged(ctx, email, items)
}

// Start materializes a new session from the staged snapshot and prefills
// the shipping form from the user's saved address when one exists.
func (s *checkoutServiceImpl) Start(ctx context.Context, email string) (*checkout.Session, error) {
	items, err := s.snapshots.LoadStaged(ctx, email)
	if err != nil {
		return nil, err
	}

	from, to := checkout.DeliveryWindow(s.now())
	sess := &checkout.Session{
		ID:              uuid.NewString(),
		UserEmail:       email,
		Step:            checkout.StepShipping,
		Items:           items,
		ItemIDs:         model.ItemIDs(items),
		Shipping:        model.DefaultShippingForm(),
		AddressMode:     model.AddressModeSaved,
		PaymentMethodID: model.DefaultPaymentMethodID,
		OrderNumber:     checkout.NewOrderNumber(),
		DeliveryFrom:    from,
		DeliveryTo:      to,
		CreatedAt:       s.now(),
	}

	applySavedAddress(sess, s.fetchSavedAddress(ctx, email))

	s.mu.Lock()
	s.purgeExpiredLocked()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return snapshotOf(sess), nil
}

func (s *checkoutServiceImpl) purgeExpiredLocked() {
	cutoff := s.now().Add(-sessionTTL)
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// fetchSavedAddress never blocks checkout: any failure is logged and
// treated as no address on file.
func (s *checkoutServiceImpl) fetchSavedAddress(ctx context.Context, email string) *model.ShippingForm {
	if email == "" {
		log.Println("address prefill skipped: no user email")
		return nil
	}

	addr, err := s.backend.LookupAddress(ctx, email)
	if err != nil {
		log.Println("address prefill failed:", err)
		return nil
	}
	return addr
}

func applySavedAddress(sess *checkout.Session, addr *model.ShippingForm) {
	if addr == nil {
		sess.HasSavedAddress = false
		return
	}

	sess.Shipping = *addr
	if sess.Shipping.Country == "" {
		sess.Shipping.Country = model.DefaultCountry
	}
	sess.HasSavedAddress = true
}

func (s *checkoutServiceImpl) Get(ctx context.Context, sessionID string) (*checkout.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, checkout.ErrSessionNotFound
	}
	return snapshotOf(sess), nil
}

func (s *checkoutServiceImpl) SubmitShipping(ctx context.Context, sessionID string, form model.ShippingForm) (*checkout.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, checkout.ErrSessionNotFound
	}
	if sess.Processing {
		return snapshotOf(sess), checkout.ErrAlreadyProcessing
	}

	if missing := form.MissingFields(); len(missing) > 0 {
		return snapshotOf(sess), fmt.Errorf("%w: %s", checkout.ErrMissingFields, strings.Join(missing, ", "))
	}

	next, err := checkout.Next(sess.Step, checkout.EventSubmitShipping)
	if err != nil {
		return snapshotOf(sess), err
	}

	form.Country = model.DefaultCountry
	sess.Shipping = form
	sess.Step = next
	return snapshotOf(sess), nil
}

func (s *checkoutServiceImpl) SubmitPayment(ctx context.Context, sessionID string, methodID string) (*checkout.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, checkout.ErrSessionNotFound
	}
	if sess.Processing {
		return snapshotOf(sess), checkout.ErrAlreadyProcessing
	}

	method, found := model.PaymentMethodByID(methodID)
	if !found {
		return snapshotOf(sess), fmt.Errorf("%w: %s", checkout.ErrUnknownMethod, methodID)
	}
	if !method.Available {
		return snapshotOf(sess), fmt.Errorf("%w: %s", checkout.ErrMethodUnavailable, methodID)
	}

	next, err := checkout.Next(sess.Step, checkout.EventSubmitPayment)
	if err != nil {
		return snapshotOf(sess), err
	}

	sess.PaymentMethodID = method.ID
	sess.Step = next
	return snapshotOf(sess), nil
}

// Edit jumps back to a previous step via one of the two explicit edit
// affordances.
func (s *checkoutServiceImpl) Edit(ctx context.Context, sessionID string, target checkout.Step) (*checkout.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, checkout.ErrSessionNotFound
	}
	if sess.Processing {
		return snapshotOf(sess), checkout.ErrAlreadyProcessing
	}

	var event checkout.Event
	switch target {
	case checkout.StepShipping:
		event = checkout.EventEditShipping
	case checkout.StepPayment:
		event = checkout.EventEditPayment
	default:
		return snapshotOf(sess), fmt.Errorf("%w: cannot edit %s", checkout.ErrInvalidTransition, target)
	}

	next, err := checkout.Next(sess.Step, event)
	if err != nil {
		return snapshotOf(sess), err
	}

	sess.Step = next
	return snapshotOf(sess), nil
}

// SetAddressMode toggles between the saved-address and new-address
// tracks. Choosing saved re-triggers the lookup; the toggle is idempotent.
func (s *checkoutServiceImpl) SetAddressMode(ctx context.Context, sessionID string, mode model.AddressMode) (*checkout.Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, checkout.ErrSessionNotFound
	}

	if !mode.Valid() {
		view := snapshotOf(sess)
		s.mu.Unlock()
		return view, fmt.Errorf("%w: %q", checkout.ErrInvalidAddressMode, mode)
	}
	if sess.Processing {
		view := snapshotOf(sess)
		s.mu.Unlock()
		return view, checkout.ErrAlreadyProcessing
	}
	if sess.Step.IsTerminal() {
		view := snapshotOf(sess)
		s.mu.Unlock()
		return view, fmt.Errorf("%w: session confirmed", checkout.ErrInvalidTransition)
	}

	if mode == model.AddressModeNew {
		sess.AddressMode = model.AddressModeNew
		sess.Shipping = model.DefaultShippingForm()
		view := snapshotOf(sess)
		s.mu.Unlock()
		return view, nil
	}

	email := sess.UserEmail
	s.mu.Unlock()

	addr := s.fetchSavedAddress(ctx, email)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.AddressMode = model.AddressModeSaved
	sess.Shipping = model.DefaultShippingForm()
	applySavedAddress(sess, addr)
	return snapshotOf(sess), nil
}

// Confirm runs the commit sequence: create the order, then clean up the
// cart. The confirmation transition depends on the actual outcome,
// bounded by the commit timeout; failure lands in the retryable failed
// step.
func (s *checkoutServiceImpl) Confirm(ctx context.Context, sessionID string, instructions string) (*checkout.Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, checkout.ErrSessionNotFound
	}
	if sess.Step != checkout.StepReview && sess.Step != checkout.StepFailed {
		view := snapshotOf(sess)
		s.mu.Unlock()
		return view, fmt.Errorf("%w: confirm from %s", checkout.ErrInvalidTransition, view.Step)
	}
	if sess.Processing {
		view := snapshotOf(sess)
		s.mu.Unlock()
		return view, checkout.ErrAlreadyProcessing
	}

	sess.Processing = true
	sess.Instructions = instructions

	method, _ := model.PaymentMethodByID(sess.PaymentMethodID)
	payload := &model.OrderPayload{
		Items:        sess.Items,
		OrderNumber:  sess.OrderNumber,
		DeliveryDate: checkout.FormatDeliveryWindow(sess.DeliveryFrom, sess.DeliveryTo),
		Note:         instructions,
		TotalFee:     pricing.Total(sess.Items, method),
		Email:        sess.UserEmail,
	}
	if sess.ShippingIncluded() {
		shipping := sess.Shipping
		payload.Shipping = &shipping
	}
	email := sess.UserEmail
	itemIDs := sess.ItemIDs
	s.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	result, err := s.backend.CreateOrder(cctx, payload)

	if err != nil || result == nil || !result.Success() {
		if err == nil {
			err = fmt.Errorf("order status %q", result.Status)
		}
		log.Println("order commit failed:", err)

		s.mu.Lock()
		defer s.mu.Unlock()
		sess.Processing = false
		next, nerr := checkout.Next(sess.Step, checkout.EventCommitFailed)
		if nerr != nil {
			sess.LastError = nerr.Error()
			return snapshotOf(sess), nerr
		}
		sess.Step = next
		sess.LastError = err.Error()
		return snapshotOf(sess), fmt.Errorf("%w: %v", checkout.ErrCommitFailed, err)
	}

	s.cleanupCart(cctx, email, itemIDs)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.Processing = false
	// The processing gate keeps the step parked at review/failed while
	// the commit is in flight, so this transition cannot be rejected;
	// if it ever is, report it instead of masking it.
	next, nerr := checkout.Next(sess.Step, checkout.EventCommitSucceeded)
	if nerr != nil {
		sess.LastError = nerr.Error()
		return snapshotOf(sess), nerr
	}
	sess.ServerOrderID = result.OrderID
	sess.Step = next
	sess.LastError = ""
	return snapshotOf(sess), nil
}

// cleanupCart is attempted only after the order write succeeded. Failures
// here are logged, never rolled back: the order stands either way.
func (s *checkoutServiceImpl) cleanupCart(ctx context.Context, email string, itemIDs []string) {
	if err := s.backend.DeleteCartItems(ctx, email, itemIDs); err != nil {
		log.Println("cart cleanup failed:", err)
		return
	}

	if err := s.snapshots.ClearStaged(ctx, email); err != nil {
		log.Println("clear staged snapshot:", err)
	}
	if err := s.cart.ClearCart(ctx, email); err != nil {
		log.Println("clear cart cache:", err)
	}
	if err := s.cart.ResetCount(ctx, email); err != nil {
		log.Println("reset cart count:", err)
	}
}
