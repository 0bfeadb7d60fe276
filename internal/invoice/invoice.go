// Package invoice derives billing documents from approved timesheets and
// owns their year-scoped numbering.
package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the billing state of an invoice.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Invoice is a billing document over a frozen set of approved timesheets
// of one contract. Line items are a snapshot taken at generation time;
// later contract rate changes never alter an issued invoice.
type Invoice struct {
	ID         uuid.UUID
	ContractID uuid.UUID

	// Number is year-scoped and monotonic, e.g. INV-2026-0007.
	Number string

	AmountCents int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	DueDate     time.Time
	Status      Status

	LineItems []*LineItem

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// LineItem bills one timesheet at the rate in force when the invoice was
// generated.
type LineItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	TimesheetID uuid.UUID
	WeekStart   time.Time
	WeekEnd     time.Time
	Hours       float64
	RateCents   int64
	AmountCents int64
}
