package invoice

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/http/respond"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.generate)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Post("/{id}/send", h.markSent)
	r.Post("/{id}/overdue", h.markOverdue)
	r.Post("/{id}/paid", h.markPaid)
	r.Post("/{id}/cancel", h.cancel)
}

type generateRequest struct {
	ContractID   uuid.UUID   `json:"contract_id"`
	TimesheetIDs []uuid.UUID `json:"timesheet_ids"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	acting, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Generate(r.Context(), acting, invoice.GenerateParams{
		ContractID:   req.ContractID,
		TimesheetIDs: req.TimesheetIDs,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	acting, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contractID, err := uuid.Parse(r.URL.Query().Get("contract_id"))
	if err != nil {
		http.Error(w, "invalid contract_id", http.StatusBadRequest)
		return
	}

	invoices, err := h.svc.ListByContract(r.Context(), acting, contractID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(invoices))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Get(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) markSent(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.MarkSent(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) markOverdue(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.MarkOverdue(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.MarkPaid(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Cancel(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
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
