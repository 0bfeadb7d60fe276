// Package payment talks to the external one-time-payment provider.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CheckoutParams describes the one-time payment to collect.
type CheckoutParams struct {
	AmountCents int64             `json:"amount_cents"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

// Checkout is the provider's hosted payment session.
type Checkout struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Provider creates hosted checkout sessions. Confirmation arrives out of
// band through the provider's webhook.
//
//go:generate mockgen -source=payment.go -destination=provider_mock.go -package=payment
type Provider interface {
	CreateCheckout(ctx context.Context, params CheckoutParams) (*Checkout, error)
}

// Client is the HTTP implementation of Provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) CreateCheckout(ctx context.Context, params CheckoutParams) (*Checkout, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding checkout: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkouts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code %d creating checkout", resp.StatusCode)
	}

	var checkout Checkout
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return nil, fmt.Errorf("decoding checkout: %w", err)
	}

	return &checkout, nil
}
