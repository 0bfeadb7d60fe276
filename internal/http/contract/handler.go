package contract

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/http/respond"
	"github.com/benchlane/benchlane/internal/identity"
)

type Handler struct {
	svc *contract.Service
}

func NewHandler(svc *contract.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.updateTerms)

	r.Post("/{id}/agree", h.transitionTo((*contract.Service).Agree))
	r.Post("/{id}/activate", h.transitionTo((*contract.Service).Activate))
	r.Post("/{id}/complete", h.transitionTo((*contract.Service).Complete))
	r.Post("/{id}/cancel", h.transitionTo((*contract.Service).Cancel))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	acting, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contracts, err := h.svc.List(r.Context(), acting)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(contracts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

type updateTermsRequest struct {
	Title           string    `json:"title"`
	Terms           string    `json:"terms"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
}

func (h *Handler) updateTerms(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	var req updateTermsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.UpdateTerms(r.Context(), acting, id, contract.TermsParams{
		Title:           req.Title,
		Terms:           req.Terms,
		HourlyRateCents: req.HourlyRateCents,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) transitionTo(op func(*contract.Service, context.Context, identity.ActingCompany, uuid.UUID) (*contract.Contract, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acting, id, ok := actingAndID(w, r)
		if !ok {
			return
		}

		c, err := op(h.svc, r.Context(), acting, id)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, toResponse(c))
	}
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
