package request

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/conversation"
	"github.com/benchlane/benchlane/internal/finalize"
	"github.com/benchlane/benchlane/internal/http/respond"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/request"
)

type Handler struct {
	svc           *request.Service
	conversations *conversation.Service
	finalizer     *finalize.Service
}

func NewHandler(svc *request.Service, conversations *conversation.Service, finalizer *finalize.Service) *Handler {
	return &Handler{svc: svc, conversations: conversations, finalizer: finalizer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Post("/{id}/negotiate", h.transitionTo((*request.Service).Negotiate))
	r.Post("/{id}/accept", h.transitionTo((*request.Service).Accept))
	r.Post("/{id}/reject", h.transitionTo((*request.Service).Reject))
	r.Post("/{id}/cancel", h.transitionTo((*request.Service).Cancel))
	r.Post("/{id}/start", h.transitionTo((*request.Service).Start))
	r.Post("/{id}/complete", h.transitionTo((*request.Service).Complete))

	r.Post("/{id}/offer", h.sendOffer)
	r.Delete("/{id}/offer", h.reviseOffer)

	r.Post("/{id}/checkout", h.startCheckout)

	r.Get("/{id}/messages", h.listMessages)
	r.Post("/{id}/messages", h.postMessage)
}

type createRequest struct {
	ListingID uuid.UUID `json:"listing_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Message   string    `json:"message"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	acting, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(r.Context(), acting, request.CreateParams{
		ListingID: req.ListingID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Message:   req.Message,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	acting, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var status *request.Status

	if s := r.URL.Query().Get("status"); s != "" {
		st := request.Status(s)
		status = &st
	}

	requests, err := h.svc.List(r.Context(), acting, status)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(requests))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	req, err := h.svc.Get(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(req))
}

// transitionTo adapts the one-argument transition methods into handlers.
func (h *Handler) transitionTo(op func(*request.Service, context.Context, identity.ActingCompany, uuid.UUID) (*request.Request, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acting, id, ok := actingAndID(w, r)
		if !ok {
			return
		}

		req, err := op(h.svc, r.Context(), acting, id)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, toResponse(req))
	}
}

type offerRequest struct {
	RateCents int64     `json:"rate_cents"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes"`
}

func (h *Handler) sendOffer(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	var req offerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.svc.SendOffer(r.Context(), acting, id, request.OfferParams{
		RateCents: req.RateCents,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(updated))
}

func (h *Handler) reviseOffer(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.ReviseOffer(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(updated))
}

type checkoutResponse struct {
	URL         string `json:"url"`
	AmountCents int64  `json:"amount_cents"`
	Discounted  bool   `json:"discounted"`
}

func (h *Handler) startCheckout(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	session, err := h.finalizer.StartCheckout(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, checkoutResponse{
		URL:         session.URL,
		AmountCents: session.AmountCents,
		Discounted:  session.Discounted,
	})
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	// Access is checked by loading the request as the caller.
	if _, err := h.svc.Get(r.Context(), acting, id); err != nil {
		respond.Error(w, err)
		return
	}

	messages, err := h.conversations.Messages(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMessageList(messages))
}

type postMessageRequest struct {
	Body string `json:"body"`
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Get(r.Context(), acting, id); err != nil {
		respond.Error(w, err)
		return
	}

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.conversations.Append(r.Context(), id, acting.UserID, req.Body)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toMessage(msg))
}

func actingAndID(w http.ResponseWriter, r *http.Request) (identity.ActingCompany, uuid.UUID, bool) {
	acting, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return identity.ActingCompany{}, uuid.Nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return identity.ActingCompany{}, uuid.Nil, false
	}

	return acting, id, true
}
