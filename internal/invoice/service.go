package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/money"
	"github.com/benchlane/benchlane/internal/notify"
	"github.com/benchlane/benchlane/internal/request"
	"github.com/benchlane/benchlane/internal/timesheet"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Invoice, error)

	// UpdateStatus performs a compare-and-swap on the status column.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error

	// BeginGenerate opens a transaction that serializes invoice numbering
	// for the given year. Concurrent generations for the same year block
	// until the first commits.
	BeginGenerate(ctx context.Context, year int) (GenerateTx, error)
}

// GenerateTx is the transactional scope of one invoice generation.
type GenerateTx interface {
	// LockTimesheets loads the given timesheets of the contract with a
	// row lock and reports which of them are already billed.
	LockTimesheets(ctx context.Context, contractID uuid.UUID, ids []uuid.UUID) ([]*BillableTimesheet, error)

	// CountForYear returns how many invoices already carry a number in
	// the year's bucket.
	CountForYear(ctx context.Context, year int) (int, error)

	CreateInvoice(ctx context.Context, inv *Invoice) error

	Commit() error
	Rollback() error
}

// BillableTimesheet is the locked view of a timesheet during generation.
type BillableTimesheet struct {
	ID         uuid.UUID
	WeekStart  time.Time
	WeekEnd    time.Time
	TotalHours float64
	Status     timesheet.Status

	// Invoiced reports whether a line item already references the
	// timesheet.
	Invoiced bool
}

// ContractDirectory resolves the contract an invoice bills against.
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
	dueDays   int

	// now is swapped in tests to pin the numbering year.
	now func() time.Time
}

func NewService(repo Repository, contracts ContractDirectory, notifier Notifier, dueDays int) *Service {
	return &Service{
		repo:      repo,
		contracts: contracts,
		notifier:  notifier,
		dueDays:   dueDays,
		now:       time.Now,
	}
}

type GenerateParams struct {
	ContractID uuid.UUID

	// TimesheetIDs is the explicit subset of approved timesheets to
	// bill. Nothing is ever auto-included.
	TimesheetIDs []uuid.UUID
}

// Generate bills a chosen set of approved timesheets as one draft
// invoice. Only the vendor side may generate, every selected timesheet
// must be approved and not yet billed, and the amount is frozen at the
// contract's current hourly rate.
func (s *Service) Generate(ctx context.Context, acting identity.ActingCompany, params GenerateParams) (*Invoice, error) {
	c, err := s.contracts.Get(ctx, acting, params.ContractID)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleVendor {
		return nil, apperr.ErrUnauthorized
	}

	ids := dedupe(params.TimesheetIDs)
	if len(ids) == 0 {
		return nil, apperr.NewValidation("timesheetIds", "at least one timesheet is required")
	}

	year := s.now().UTC().Year()

	tx, err := s.repo.BeginGenerate(ctx, year)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	sheets, err := tx.LockTimesheets(ctx, c.ID, ids)
	if err != nil {
		return nil, err
	}

	if len(sheets) != len(ids) {
		return nil, apperr.ErrNotFound
	}

	inv := &Invoice{
		ContractID: c.ID,
		Status:     StatusDraft,
	}

	for _, ts := range sheets {
		if ts.Status != timesheet.StatusApproved {
			return nil, apperr.NewValidation("timesheetIds", "only approved timesheets can be invoiced")
		}

		if ts.Invoiced {
			return nil, fmt.Errorf("timesheet %s is already invoiced: %w", ts.ID, apperr.ErrAlreadyProcessed)
		}

		amount := money.HoursToCents(ts.TotalHours, c.HourlyRateCents)
		inv.LineItems = append(inv.LineItems, &LineItem{
			TimesheetID: ts.ID,
			WeekStart:   ts.WeekStart,
			WeekEnd:     ts.WeekEnd,
			Hours:       ts.TotalHours,
			RateCents:   c.HourlyRateCents,
			AmountCents: amount,
		})
		inv.AmountCents += amount

		if inv.PeriodStart.IsZero() || ts.WeekStart.Before(inv.PeriodStart) {
			inv.PeriodStart = ts.WeekStart
		}

		if ts.WeekEnd.After(inv.PeriodEnd) {
			inv.PeriodEnd = ts.WeekEnd
		}
	}

	inv.DueDate = inv.PeriodEnd.AddDate(0, 0, s.dueDays)

	count, err := tx.CountForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	inv.Number = fmt.Sprintf("INV-%d-%04d", year, count+1)

	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return inv, nil
}

// Get returns an invoice to a participant of its contract.
func (s *Service) Get(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.contracts.Get(ctx, acting, inv.ContractID); err != nil {
		return nil, err
	}

	return inv, nil
}

// ListByContract returns all invoices of a contract the caller
// participates in.
func (s *Service) ListByContract(ctx context.Context, acting identity.ActingCompany, contractID uuid.UUID) ([]*Invoice, error) {
	if _, err := s.contracts.Get(ctx, acting, contractID); err != nil {
		return nil, err
	}

	return s.repo.ListByContract(ctx, contractID)
}

// MarkSent issues a draft invoice to the client.
func (s *Service) MarkSent(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Invoice, error) {
	inv, c, err := s.transition(ctx, acting, id, request.RoleVendor, StatusDraft, StatusSent)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyCompany(ctx, c.ClientID, notify.Notification{
		Title:   "Invoice received",
		Message: fmt.Sprintf("Invoice %s over %s is due %s.", inv.Number, money.FormatEUR(inv.AmountCents), inv.DueDate.Format(time.DateOnly)),
		Link:    invoiceLink(id),
	})

	return inv, nil
}

// MarkOverdue flags a sent invoice whose due date has passed. The vendor
// triggers it; paying an overdue invoice works the same as paying a sent one.
func (s *Service) MarkOverdue(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.Get(ctx, acting, inv.ContractID)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleVendor {
		return nil, apperr.ErrUnauthorized
	}

	if inv.Status != StatusSent {
		return nil, apperr.NewInvalidTransition("invoice", string(inv.Status), string(StatusOverdue))
	}

	if !s.now().After(inv.DueDate) {
		return nil, apperr.NewValidation("dueDate", "has not passed yet")
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusSent, StatusOverdue); err != nil {
		return nil, err
	}

	inv.Status = StatusOverdue

	s.notifier.NotifyCompany(ctx, c.ClientID, notify.Notification{
		Title:   "Invoice overdue",
		Message: fmt.Sprintf("Invoice %s over %s was due %s.", inv.Number, money.FormatEUR(inv.AmountCents), inv.DueDate.Format(time.DateOnly)),
		Link:    invoiceLink(id),
	})

	return inv, nil
}

// MarkPaid records the client's payment of a sent or overdue invoice.
func (s *Service) MarkPaid(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.Get(ctx, acting, inv.ContractID)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleClient {
		return nil, apperr.ErrUnauthorized
	}

	switch inv.Status {
	case StatusSent, StatusOverdue:
	case StatusPaid:
		return nil, fmt.Errorf("invoice %s was already paid: %w", inv.Number, apperr.ErrAlreadyProcessed)
	default:
		return nil, apperr.NewInvalidTransition("invoice", string(inv.Status), string(StatusPaid))
	}

	if err := s.repo.UpdateStatus(ctx, id, inv.Status, StatusPaid); err != nil {
		return nil, err
	}

	inv.Status = StatusPaid

	s.notifier.NotifyCompany(ctx, c.VendorID, notify.Notification{
		Title:   "Invoice paid",
		Message: fmt.Sprintf("Invoice %s over %s was paid.", inv.Number, money.FormatEUR(inv.AmountCents)),
		Link:    invoiceLink(id),
	})

	return inv, nil
}

// Cancel voids an unpaid invoice. The billed timesheets become billable
// again once their line items stop counting.
func (s *Service) Cancel(ctx context.Context, acting identity.ActingCompany, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.Get(ctx, acting, inv.ContractID)
	if err != nil {
		return nil, err
	}

	role, _ := c.RoleOf(acting.CompanyID)
	if role != request.RoleVendor {
		return nil, apperr.ErrUnauthorized
	}

	switch inv.Status {
	case StatusDraft, StatusSent, StatusOverdue:
	default:
		return nil, apperr.NewInvalidTransition("invoice", string(inv.Status), string(StatusCancelled))
	}

	if err := s.repo.UpdateStatus(ctx, id, inv.Status, StatusCancelled); err != nil {
		return nil, err
	}

	inv.Status = StatusCancelled

	return inv, nil
}

func (s *Service) transition(ctx context.Context, acting identity.ActingCompany, id uuid.UUID, role request.Role, from, to Status) (*Invoice, *contract.Contract, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	c, err := s.contracts.Get(ctx, acting, inv.ContractID)
	if err != nil {
		return nil, nil, err
	}

	got, _ := c.RoleOf(acting.CompanyID)
	if got != role {
		return nil, nil, apperr.ErrUnauthorized
	}

	if inv.Status != from {
		return nil, nil, apperr.NewInvalidTransition("invoice", string(inv.Status), string(to))
	}

	if err := s.repo.UpdateStatus(ctx, id, from, to); err != nil {
		return nil, nil, err
	}

	inv.Status = to

	return inv, c, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))

	var out []uuid.UUID

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func invoiceLink(id uuid.UUID) string {
	return "/invoices/" + id.String()
}
