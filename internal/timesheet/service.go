package timesheet

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/money"
	"github.com/benchlane/benchlane/internal/notify"
	"github.com/benchlane/benchlane/internal/request"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=timesheet
type Repository interface {
	// CreateTimesheet inserts the timesheet and its entries atomically and
	// fails with apperr.ErrAlreadyProcessed when the (contract, week start)
	// pair already exists.
	CreateTimesheet(ctx context.Context, ts *Timesheet) error
	GetTimesheet(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Timesheet, error)

	// UpdateStatus performs a compare-and-swap on the status column,
	// writing the rejection reason alongside when given.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason *string) error
}

// ContractDirectory resolves the contract a timesheet belongs to.
type ContractDirectory interface {
	Get(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*contract.Contract, error)
}

// Notifier delivers best-effort notifications to a company's users.
type Notifier interface {
	NotifyCompany(ctx context.Context, companyID uuid.UUID, n notify.Notification)
}

type Service struct {
	repo      Repository
	contracts ContractDirectory
	notifier  Notifier
}

func NewService(repo Repository, contracts ContractDirectory, notifier Notifier) *Service {
	return &Service{repo: repo, contracts: contracts, notifier: notifier}
}

type EntryParams struct {
	Date        time.Time
	Hours       float64
	Description string
}

type CreateParams struct {
	ContractID uuid.UUID

	// WeekOf is any date inside the week being logged; it is normalized to
	// the week's Monday.
	WeekOf time.Time

	// TotalHours may be zero when Entries are given; it is then derived.
	TotalHours float64
	Entries    []EntryParams
}

// Create logs a draft timesheet for one week of an active contract. Only
// the vendor side may log hours, and only while the engagement is running.
func (s *Service) Create(ctx context.Context, acting identity.ActingCompany, params CreateParams) (*Timesheet, error) {
	c, err := s.contracts.Get(ctx, acting, params.ContractID)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleVendor {
		return nil, apperr.ErrUnauthorized
	}

	if c.Status != contract.StatusActive {
		return nil, apperr.NewValidation("contract", "hours can only be logged on an active contract")
	}

	weekStart, weekEnd := WeekBounds(params.WeekOf)

	total := params.TotalHours
	if len(params.Entries) > 0 {
		hours := make([]float64, len(params.Entries))
		for i, e := range params.Entries {
			hours[i] = e.Hours
		}

		sum := money.SumHours(hours)
		if total == 0 {
			total = sum
		} else if math.Abs(sum-total) > 1e-9 {
			return nil, apperr.NewValidation("totalHours", "must equal the sum of entry hours")
		}
	}

	if total <= 0 {
		return nil, apperr.NewValidation("totalHours", "must be positive")
	}

	ts := &Timesheet{
		ContractID: c.ID,
		WeekStart:  weekStart,
		WeekEnd:    weekEnd,
		TotalHours: total,
		Status:     StatusDraft,
	}

	for _, e := range params.Entries {
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(weekStart) || day.After(weekEnd) {
			return nil, apperr.NewValidation("entries", "entry dates must fall inside the logged week")
		}

		if e.Hours <= 0 {
			return nil, apperr.NewValidation("entries", "entry hours must be positive")
		}

		ts.Entries = append(ts.Entries, &Entry{Date: day, Hours: e.Hours, Description: e.Description})
	}

	if err := s.repo.CreateTimesheet(ctx, ts); err != nil {
		return nil, err
	}

	return ts, nil
}

// Get returns a timesheet to a participant of its contract.
func (s *Service) Get(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Timesheet, error) {
	ts, err := s.repo.GetTimesheet(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.contracts.Get(ctx, acting, ts.ContractID); err != nil {
		return nil, err
	}

	return ts, nil
}

// ListByContract returns all timesheets of a contract the caller
// participates in.
func (s *Service) ListByContract(ctx context.Context, acting identity.ActingCompany, contractID uuid.UUID) ([]*Timesheet, error) {
	if _, err := s.contracts.Get(ctx, acting, contractID); err != nil {
		return nil, err
	}

	return s.repo.ListByContract(ctx, contractID)
}

// Submit hands a draft timesheet to the client for approval.
func (s *Service) Submit(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Timesheet, error) {
	ts, c, err := s.load(ctx, acting, id)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleVendor {
		return nil, apperr.ErrUnauthorized
	}

	if ts.Status != StatusDraft {
		return nil, apperr.NewInvalidTransition("timesheet", string(ts.Status), string(StatusSubmitted))
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusDraft, StatusSubmitted, nil); err != nil {
		return nil, err
	}

	ts.Status = StatusSubmitted

	s.notifier.NotifyCompany(ctx, c.ClientID, notify.Notification{
		Title:   "Timesheet submitted",
		Message: fmt.Sprintf("%.1f hours for the week of %s await your approval.", ts.TotalHours, ts.WeekStart.Format(time.DateOnly)),
		Link:    timesheetLink(id),
	})

	return ts, nil
}

// Approve accepts a submitted timesheet. Approving anything else fails
// explicitly; an already-decided timesheet reports the double-processing.
func (s *Service) Approve(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Timesheet, error) {
	return s.decide(ctx, acting, id, StatusApproved, "")
}

// Reject declines a submitted timesheet with a reason.
func (s *Service) Reject(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, reason string) (*Timesheet, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperr.NewValidation("reason", "is required")
	}

	return s.decide(ctx, acting, id, StatusRejected, reason)
}

func (s *Service) decide(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, to Status, reason string) (*Timesheet, error) {
	ts, c, err := s.load(ctx, acting, id)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleClient {
		return nil, apperr.ErrUnauthorized
	}

	switch ts.Status {
	case StatusSubmitted:
	case StatusApproved, StatusRejected:
		return nil, fmt.Errorf("timesheet was already %s: %w", ts.Status, apperr.ErrAlreadyProcessed)
	default:
		return nil, apperr.NewInvalidTransition("timesheet", string(ts.Status), string(to))
	}

	var reasonPtr *string
	if to == StatusRejected {
		reasonPtr = &reason
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusSubmitted, to, reasonPtr); err != nil {
		return nil, err
	}

	ts.Status = to
	ts.RejectionReason = reasonPtr

	n := notify.Notification{Link: timesheetLink(id)}
	if to == StatusApproved {
		n.Title = "Timesheet approved"
		n.Message = fmt.Sprintf("Your timesheet for the week of %s was approved.", ts.WeekStart.Format(time.DateOnly))
	} else {
		n.Title = "Timesheet rejected"
		n.Message = fmt.Sprintf("Your timesheet for the week of %s was rejected: %s", ts.WeekStart.Format(time.DateOnly), reason)
	}

	s.notifier.NotifyCompany(ctx, c.VendorID, n)

	return ts, nil
}

func (s *Service) load(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Timesheet, *contract.Contract, error) {
	ts, err := s.repo.GetTimesheet(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	c, err := s.contracts.Get(ctx, acting, ts.ContractID)
	if err != nil {
		return nil, nil, err
	}

	return ts, c, nil
}

func timesheetLink(id uuid.UUID) string {
	return "/timesheets/" + id.String()
}
