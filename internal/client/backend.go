package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"storefront-checkout/internal/config"
	"storefront-checkout/internal/model"
)

// BackendClient talks to the remote storefront API that owns addresses,
// orders and the persisted cart.
type BackendClient interface {
	LookupAddress(ctx context.Context, email string) (*model.ShippingForm, error)
	CreateOrder(ctx context.Context, payload *model.OrderPayload) (*model.CreateOrderResult, error)
	DeleteCartItems(ctx context.Context, email string, itemIDs []string) error
}

type backendClientImpl struct {
	httpClient *http.Client
	baseURL    string
}

func NewBackendClient(cfg *config.Backend) BackendClient {
	return &backendClientImpl{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// LookupAddress fetches the saved billing address for a user. A user with
// no address on file yields (nil, nil).
func (c *backendClientImpl) LookupAddress(ctx context.Context, email string) (*model.ShippingForm, error) {
	endpoint := fmt.Sprintf("%s/api/users/address?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("address lookup error %d: %s", resp.StatusCode, string(b))
	}

	var result model.AddressLookupResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode address response: %w", err)
	}

	return result.BillingAddress, nil
}

func (c *backendClientImpl) CreateOrder(ctx context.Context, payload *model.OrderPayload) (*model.CreateOrderResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order creation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("order creation error %d: %s", resp.StatusCode, string(b))
	}

	var result model.CreateOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}

	return &result, nil
}

func (c *backendClientImpl) DeleteCartItems(ctx context.Context, email string, itemIDs []string) error {
	body, err := json.Marshal(&model.RemoveCartItemsRequest{
		Email:   email,
		ItemIDs: itemIDs,
	})
	if err != nil {
		return fmt.Errorf("marshal cart cleanup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/cart/remove-items",
		bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cart cleanup request failed: %w", err)
	}
	defer resp.Body.Close()

	// The response is acknowledged, not strictly checked beyond status.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cart cleanup error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
