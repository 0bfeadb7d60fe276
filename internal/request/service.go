package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/company"
	"github.com/benchlane/benchlane/internal/conversation"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/money"
	"github.com/benchlane/benchlane/internal/notify"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=request
type Repository interface {
	CreateRequest(ctx context.Context, r *Request) error
	GetRequest(ctx context.Context, id uuid.UUID) (*Request, error)
	ListRequests(ctx context.Context, filter ListFilter) ([]*Request, error)

	// UpdateStatus performs a compare-and-swap on the status column and
	// fails with an invalid-transition error when the row moved underneath
	// the caller.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
	SetOffer(ctx context.Context, id uuid.UUID, from Status, offer Offer) error
	ClearOffer(ctx context.Context, id uuid.UUID) error
}

// ListingDirectory resolves the listing a request is created against.
type ListingDirectory interface {
	GetListing(ctx context.Context, id uuid.UUID) (*company.Listing, error)
}

// ThreadOpener opens the conversation thread seeded with the requester's
// initial message.
type ThreadOpener interface {
	Open(ctx context.Context, requestID, senderUserID uuid.UUID, body string) (*conversation.Thread, error)
}

// Notifier delivers best-effort notifications to a company's users.
type Notifier interface {
	NotifyCompany(ctx context.Context, companyID uuid.UUID, n notify.Notification)
}

type Service struct {
	repo     Repository
	listings ListingDirectory
	threads  ThreadOpener
	notifier Notifier
}

func NewService(repo Repository, listings ListingDirectory, threads ThreadOpener, notifier Notifier) *Service {
	return &Service{repo: repo, listings: listings, threads: threads, notifier: notifier}
}

type CreateParams struct {
	ListingID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Message   string
}

// Offer is the vendor-proposed terms written by SetOffer.
type Offer struct {
	RateCents int64
	StartDate time.Time
	EndDate   time.Time
	Notes     string
	SentAt    time.Time
}

type ListFilter struct {
	CompanyID uuid.UUID
	Status    *Status
}

// Create opens a new engagement request against a listing, snapshots the
// listing rate, seeds the conversation thread and notifies the vendor.
func (s *Service) Create(ctx context.Context, acting identity.ActingCompany, params CreateParams) (*Request, error) {
	if len(strings.TrimSpace(params.Message)) < conversation.MinMessageLen {
		return nil, apperr.NewValidation("message", "too short")
	}

	if !params.EndDate.After(params.StartDate) {
		return nil, apperr.NewValidation("endDate", "must be after start date")
	}

	listing, err := s.listings.GetListing(ctx, params.ListingID)
	if err != nil {
		return nil, err
	}

	if !listing.Active {
		return nil, apperr.NewValidation("listing", "is not active")
	}

	if listing.CompanyID == acting.CompanyID {
		return nil, apperr.NewValidation("listing", "cannot request your own listing")
	}

	r := &Request{
		ClientID:        acting.CompanyID,
		VendorID:        listing.CompanyID,
		ListingID:       listing.ID,
		Status:          StatusPending,
		AgreedRateCents: listing.HourlyRateCents,
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
	}

	if err := s.repo.CreateRequest(ctx, r); err != nil {
		return nil, err
	}

	if _, err := s.threads.Open(ctx, r.ID, acting.UserID, params.Message); err != nil {
		return nil, fmt.Errorf("opening conversation: %w", err)
	}

	s.notifier.NotifyCompany(ctx, r.VendorID, notify.Notification{
		Title:   "New engagement request",
		Message: fmt.Sprintf("A company wants to engage %q at %s/hr.", listing.Title, money.FormatEUR(r.AgreedRateCents)),
		Link:    requestLink(r.ID),
	})

	return r, nil
}

// Get returns a request to one of its participants.
func (s *Service) Get(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	r, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := r.RoleOf(acting.CompanyID); !ok {
		return nil, apperr.ErrNotFound
	}

	return r, nil
}

// List returns the acting company's requests, newest first.
func (s *Service) List(ctx context.Context, acting identity.ActingCompany, status *Status) ([]*Request, error) {
	return s.repo.ListRequests(ctx, ListFilter{CompanyID: acting.CompanyID, Status: status})
}

// Negotiate moves a pending request into negotiation (vendor only).
func (s *Service) Negotiate(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	return s.transition(ctx, acting, id, StatusNegotiating)
}

// Accept accepts a pending request directly (vendor only). A standing offer
// is never accepted this way; the client settles it by paying the
// finalization fee, and the payment confirmation moves the status.
func (s *Service) Accept(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	return s.transition(ctx, acting, id, StatusAccepted)
}

// Reject declines a request or an offer.
func (s *Service) Reject(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	return s.transition(ctx, acting, id, StatusRejected)
}

// Cancel abandons a request.
func (s *Service) Cancel(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	return s.transition(ctx, acting, id, StatusCancelled)
}

// Start marks an accepted engagement as running.
func (s *Service) Start(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	return s.transition(ctx, acting, id, StatusInProgress)
}

// Complete marks a running engagement as done.
func (s *Service) Complete(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	return s.transition(ctx, acting, id, StatusCompleted)
}

type OfferParams struct {
	RateCents int64
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

// SendOffer attaches vendor-proposed terms and moves the request to
// offer_sent.
func (s *Service) SendOffer(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, params OfferParams) (*Request, error) {
	if params.RateCents <= 0 {
		return nil, apperr.NewValidation("offeredRate", "must be positive")
	}

	if !params.EndDate.After(params.StartDate) {
		return nil, apperr.NewValidation("offeredEndDate", "must be after start date")
	}

	r, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	role, ok := r.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if !CanTransition(r.Status, StatusOfferSent, role) {
		return nil, apperr.NewInvalidTransition("request", string(r.Status), string(StatusOfferSent))
	}

	offer := Offer{
		RateCents: params.RateCents,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Notes:     params.Notes,
		SentAt:    time.Now().UTC(),
	}

	if err := s.repo.SetOffer(ctx, id, r.Status, offer); err != nil {
		return nil, err
	}

	r.Status = StatusOfferSent
	r.OfferedRateCents = &offer.RateCents
	r.OfferedStartDate = &offer.StartDate
	r.OfferedEndDate = &offer.EndDate
	r.OfferNotes = &offer.Notes
	r.OfferSentAt = &offer.SentAt

	s.notifier.NotifyCompany(ctx, r.ClientID, notify.Notification{
		Title:   "Offer received",
		Message: fmt.Sprintf("The vendor proposed %s/hr for your engagement request.", money.FormatEUR(offer.RateCents)),
		Link:    requestLink(r.ID),
	})

	return r, nil
}

// ReviseOffer withdraws the current offer: all offer fields are cleared and
// the request returns to negotiating, keeping the negotiation context. A
// withdrawn offer never lingers as stale data.
func (s *Service) ReviseOffer(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Request, error) {
	r, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	role, ok := r.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if !CanTransition(r.Status, StatusNegotiating, role) {
		return nil, apperr.NewInvalidTransition("request", string(r.Status), string(StatusNegotiating))
	}

	if err := s.repo.ClearOffer(ctx, id); err != nil {
		return nil, err
	}

	r.Status = StatusNegotiating
	r.OfferedRateCents = nil
	r.OfferedStartDate = nil
	r.OfferedEndDate = nil
	r.OfferNotes = nil
	r.OfferSentAt = nil

	s.notifier.NotifyCompany(ctx, r.ClientID, notify.Notification{
		Title:   "Offer withdrawn",
		Message: "The vendor withdrew their offer and reopened negotiation.",
		Link:    requestLink(r.ID),
	})

	return r, nil
}

func (s *Service) transition(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, to Status) (*Request, error) {
	r, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	role, ok := r.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if !CanTransition(r.Status, to, role) {
		return nil, apperr.NewInvalidTransition("request", string(r.Status), string(to))
	}

	if err := s.repo.UpdateStatus(ctx, id, r.Status, to); err != nil {
		return nil, err
	}

	r.Status = to

	s.notifier.NotifyCompany(ctx, r.CounterpartyID(role), statusNotification(r))

	return r, nil
}

func statusNotification(r *Request) notify.Notification {
	n := notify.Notification{Link: requestLink(r.ID)}

	switch r.Status {
	case StatusNegotiating:
		n.Title = "Negotiation opened"
		n.Message = "The vendor opened negotiation on your engagement request."
	case StatusAccepted:
		n.Title = "Request accepted"
		n.Message = "Your engagement request was accepted."
	case StatusRejected:
		n.Title = "Request rejected"
		n.Message = "The engagement request was rejected."
	case StatusCancelled:
		n.Title = "Request cancelled"
		n.Message = "The engagement request was cancelled."
	case StatusInProgress:
		n.Title = "Engagement started"
		n.Message = "The engagement is now in progress."
	case StatusCompleted:
		n.Title = "Engagement completed"
		n.Message = "The engagement was marked as completed."
	default:
		n.Title = "Request updated"
		n.Message = fmt.Sprintf("The engagement request moved to %s.", r.Status)
	}

	return n
}

func requestLink(id uuid.UUID) string {
	return "/requests/" + id.String()
}
