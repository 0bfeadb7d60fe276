package timesheet

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/http/respond"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/timesheet"
)

type Handler struct {
	svc *timesheet.Service
}

func NewHandler(svc *timesheet.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Post("/{id}/submit", h.submit)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/reject", h.reject)
}

type entryRequest struct {
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

type createRequest struct {
	ContractID uuid.UUID      `json:"contract_id"`
	WeekOf     time.Time      `json:"week_of"`
	TotalHours float64        `json:"total_hours"`
	Entries    []entryRequest `json:"entries"`
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

	params := timesheet.CreateParams{
		ContractID: req.ContractID,
		WeekOf:     req.WeekOf,
		TotalHours: req.TotalHours,
	}

	for _, e := range req.Entries {
		params.Entries = append(params.Entries, timesheet.EntryParams{
			Date:        e.Date,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}

	ts, err := h.svc.Create(r.Context(), acting, params)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(ts))
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

	timesheets, err := h.svc.ListByContract(r.Context(), acting, contractID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(timesheets))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	ts, err := h.svc.Get(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ts))
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	ts, err := h.svc.Submit(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ts))
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	ts, err := h.svc.Approve(r.Context(), acting, id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ts))
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	acting, id, ok := actingAndID(w, r)
	if !ok {
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ts, err := h.svc.Reject(r.Context(), acting, id, req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ts))
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
