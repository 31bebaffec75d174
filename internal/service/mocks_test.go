package service

import (
	"context"

	"storefront-checkout/internal/checkout"
	"storefront-checkout/internal/model"
)

// MockBackend implements client.BackendClient for testing
type MockBackend struct {
	Addr      *model.ShippingForm
	AddrErr   error
	CreateRes *model.CreateOrderResult
	CreateErr error
	DeleteErr error

	LookupCalls int
	CreateCalls int
	DeleteCalls int
	LastPayload *model.OrderPayload // Captures the payload passed to CreateOrder
	DeletedIDs  []string

	// CreateStarted is closed when CreateOrder is entered and
	// CreateRelease, when set, holds the call open until closed. Lets
	// tests observe the session mid-commit.
	CreateStarted chan struct{}
	CreateRelease chan struct{}
}

func (m *MockBackend) LookupAddress(_ context.Context, _ string) (*model.ShippingForm, error) {
	m.LookupCalls++
	return m.Addr, m.AddrErr
}

func (m *MockBackend) CreateOrder(_ context.Context, payload *model.OrderPayload) (*model.CreateOrderResult, error) {
	m.CreateCalls++
	m.LastPayload = payload
	if m.CreateStarted != nil {
		close(m.CreateStarted)
	}
	if m.CreateRelease != nil {
		<-m.CreateRelease
	}
	return m.CreateRes, m.CreateErr
}

func (m *MockBackend) DeleteCartItems(_ context.Context, _ string, itemIDs []string) error {
	m.DeleteCalls++
	m.DeletedIDs = itemIDs
	return m.DeleteErr
}

// MockSnapshots implements store.SnapshotRepository for testing
type MockSnapshots struct {
	Items   []model.LineItem
	LoadErr error
	SaveErr error

	Saved   []model.LineItem
	Cleared bool
}

func (m *MockSnapshots) SaveStaged(_ context.Context, _ string, items []model.LineItem) error {
	m.Saved = items
	return m.SaveErr
}

func (m *MockSnapshots) LoadStaged(_ context.Context, _ string) ([]model.LineItem, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if len(m.Items) == 0 {
		return nil, checkout.ErrNothingStaged
	}
	return m.Items, nil
}

func (m *MockSnapshots) ClearStaged(_ context.Context, _ string) error {
	m.Cleared = true
	return nil
}

// MockCart implements store.CartRepository for testing
type MockCart struct {
	ClearCalled bool
	ResetCalled bool
	StoredCount int
}

func (m *MockCart) ClearCart(_ context.Context, _ string) error {
	m.ClearCalled = true
	return nil
}

func (m *MockCart) SetCount(_ context.Context, _ string, count int) error {
	m.StoredCount = count
	return nil
}

func (m *MockCart) ResetCount(_ context.Context, _ string) error {
	m.ResetCalled = true
	m.StoredCount = 0
	return nil
}

func (m *MockCart) Count(_ context.Context, _ string) (int, error) {
	return m.StoredCount, nil
}
