// Package webhook consumes inbound events from the payment provider.
// Its routes stay outside the authenticated API surface.
package webhook

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/finalize"
	"github.com/benchlane/benchlane/internal/http/respond"
)

type Handler struct {
	finalizer *finalize.Service
	secret    []byte
}

func NewHandler(finalizer *finalize.Service, secret string) *Handler {
	return &Handler{finalizer: finalizer, secret: []byte(secret)}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/payment", h.payment)
}

type paymentEvent struct {
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

func (h *Handler) payment(w http.ResponseWriter, r *http.Request) {
	provided := []byte(r.Header.Get("X-Webhook-Secret"))
	if subtle.ConstantTimeCompare(provided, h.secret) != 1 {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var event paymentEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Only successful payments drive state; everything else is
	// acknowledged and dropped.
	if event.Type != "payment.succeeded" {
		w.WriteHeader(http.StatusOK)
		return
	}

	requestID, err := uuid.Parse(event.Metadata["request_id"])
	if err != nil {
		http.Error(w, "invalid request_id", http.StatusBadRequest)
		return
	}

	conf := finalize.Confirmation{
		RequestID:  requestID,
		Discounted: event.Metadata["discounted"] == "true",
	}

	if err := h.finalizer.ConfirmPayment(r.Context(), conf); err != nil {
		slog.Error("payment confirmation failed", "request_id", requestID, "error", err)
		respond.Error(w, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}
