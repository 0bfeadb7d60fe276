// Package timesheet owns the weekly worked-hours records of a contract and
// their vendor-submits, client-approves chain.
package timesheet

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the approval state of a timesheet.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Timesheet is the worked-hours record for one ISO week of one contract.
// At most one exists per (contract, week start).
type Timesheet struct {
	ID         uuid.UUID
	ContractID uuid.UUID

	// WeekStart is always a Monday, WeekEnd the following Sunday.
	WeekStart time.Time
	WeekEnd   time.Time

	TotalHours float64
	Status     Status

	// RejectionReason is set when the client rejects.
	RejectionReason *string

	// Entries is the optional per-day breakdown; when present their hours
	// sum to TotalHours.
	Entries []*Entry

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Entry is one day's worked hours inside a timesheet.
type Entry struct {
	ID          uuid.UUID
	TimesheetID uuid.UUID
	Date        time.Time
	Hours       float64
	Description string
}
