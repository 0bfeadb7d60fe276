package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchlane/benchlane/internal/payment"
)

func TestClient_CreateCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var params payment.CheckoutParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, int64(49500), params.AmountCents)
		assert.Equal(t, "req-123", params.Metadata["request_id"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payment.Checkout{ID: "co_1", URL: "https://pay.example/co_1"})
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, "test-key")

	checkout, err := client.CreateCheckout(context.Background(), payment.CheckoutParams{
		AmountCents: 49500,
		Currency:    "eur",
		Metadata:    map[string]string{"request_id": "req-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "co_1", checkout.ID)
	assert.Equal(t, "https://pay.example/co_1", checkout.URL)
}

func TestClient_CreateCheckout_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, "test-key")

	_, err := client.CreateCheckout(context.Background(), payment.CheckoutParams{AmountCents: 100})
	assert.Error(t, err)
}
