package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/notify"
	"github.com/benchlane/benchlane/internal/request"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*Contract, error)

	// SetAgreement stamps the role's agreement marker (keeping an existing
	// stamp) and advances draft to accepted in the same write when the
	// other marker is already set. Fails when the contract is not draft.
	SetAgreement(ctx context.Context, id uuid.UUID, role request.Role) (*Contract, error)

	// UpdateTerms rewrites the negotiable fields of a draft contract and
	// clears both agreement markers in the same write.
	UpdateTerms(ctx context.Context, id uuid.UUID, params TermsParams) (*Contract, error)

	// UpdateStatus performs a compare-and-swap on the status column.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

// Notifier delivers best-effort notifications to a company's users.
type Notifier interface {
	NotifyCompany(ctx context.Context, companyID uuid.UUID, n notify.Notification)
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

type TermsParams struct {
	Title           string
	Terms           string
	HourlyRateCents int64
	StartDate       time.Time
	EndDate         time.Time
}

// Get returns a contract to one of its participants.
func (s *Service) Get(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := c.RoleOf(acting.CompanyID); !ok {
		return nil, apperr.ErrNotFound
	}

	return c, nil
}

// List returns the acting company's contracts, newest first.
func (s *Service) List(ctx context.Context, acting identity.ActingCompany) ([]*Contract, error) {
	return s.repo.ListByCompany(ctx, acting.CompanyID)
}

// Agree stamps the caller's agreement marker. Re-agreeing is a no-op that
// keeps the original timestamp. Whichever party agrees second advances the
// contract from draft to accepted within the same write, so both orders
// converge on the same final state.
func (s *Service) Agree(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	role, ok := c.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if c.AgreedAt(role) != nil {
		return c, nil
	}

	if c.Status != StatusDraft && c.Status != StatusSent {
		return nil, apperr.NewInvalidTransition("contract", string(c.Status), string(StatusAccepted))
	}

	updated, err := s.repo.SetAgreement(ctx, id, role)
	if err != nil {
		return nil, err
	}

	n := notify.Notification{Link: contractLink(id)}
	if updated.Status == StatusAccepted {
		n.Title = "Contract accepted"
		n.Message = "Both parties agreed; the contract is now binding."
	} else {
		n.Title = "Contract awaiting your agreement"
		n.Message = "The counterparty agreed to the contract terms."
	}

	s.notifier.NotifyCompany(ctx, c.CounterpartyID(role), n)

	return updated, nil
}

// UpdateTerms edits a draft contract. Any edit clears both agreement
// markers, so one party can never silently alter terms the other has
// already signed off on.
func (s *Service) UpdateTerms(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, params TermsParams) (*Contract, error) {
	if params.Title == "" {
		return nil, apperr.NewValidation("title", "is required")
	}

	if params.HourlyRateCents <= 0 {
		return nil, apperr.NewValidation("hourlyRate", "must be positive")
	}

	if !params.EndDate.After(params.StartDate) {
		return nil, apperr.NewValidation("endDate", "must be after start date")
	}

	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	role, ok := c.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if c.Status != StatusDraft {
		return nil, apperr.NewInvalidTransition("contract", string(c.Status), string(StatusDraft))
	}

	updated, err := s.repo.UpdateTerms(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyCompany(ctx, c.CounterpartyID(role), notify.Notification{
		Title:   "Contract terms changed",
		Message: "The contract terms were edited; both parties must agree again.",
		Link:    contractLink(id),
	})

	return updated, nil
}

// Activate moves an accepted contract into its working state.
func (s *Service) Activate(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Contract, error) {
	return s.transition(ctx, acting, id, StatusActive)
}

// Complete closes out an active contract.
func (s *Service) Complete(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Contract, error) {
	return s.transition(ctx, acting, id, StatusCompleted)
}

// Cancel terminates a contract from any non-terminal state.
func (s *Service) Cancel(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Contract, error) {
	return s.transition(ctx, acting, id, StatusCancelled)
}

func (s *Service) transition(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, to Status) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	role, ok := c.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if !CanTransition(c.Status, to) {
		return nil, apperr.NewInvalidTransition("contract", string(c.Status), string(to))
	}

	if err := s.repo.UpdateStatus(ctx, id, c.Status, to); err != nil {
		return nil, err
	}

	c.Status = to

	s.notifier.NotifyCompany(ctx, c.CounterpartyID(role), statusNotification(c))

	return c, nil
}

func statusNotification(c *Contract) notify.Notification {
	n := notify.Notification{Link: contractLink(c.ID)}

	switch c.Status {
	case StatusActive:
		n.Title = "Contract activated"
		n.Message = "The engagement is now running under the contract."
	case StatusCompleted:
		n.Title = "Contract completed"
		n.Message = "The contract was marked as completed."
	case StatusCancelled:
		n.Title = "Contract cancelled"
		n.Message = "The contract was cancelled."
	default:
		n.Title = "Contract updated"
		n.Message = "The contract status changed to " + string(c.Status) + "."
	}

	return n
}

func contractLink(id uuid.UUID) string {
	return "/contracts/" + id.String()
}
