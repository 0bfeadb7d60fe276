// Package contract owns the contractual formalization of an accepted
// engagement request. A contract becomes usable for timesheets only after
// both counterparties have explicitly agreed to its current terms.
package contract

import (
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/request"
)

// Status represents the lifecycle state of a contract.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusAccepted  Status = "accepted"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Contract formalizes exactly one request. Client and vendor IDs are
// denormalized from the request so role guards never need a join.
type Contract struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	ClientID  uuid.UUID
	VendorID  uuid.UUID

	Title           string
	Terms           string
	HourlyRateCents int64
	StartDate       time.Time
	EndDate         time.Time

	Status Status

	// Dual-agreement markers. Both non-nil means the terms are binding.
	VendorAgreedAt *time.Time
	ClientAgreedAt *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// RoleOf returns the side the given company plays, or false for outsiders.
func (c *Contract) RoleOf(companyID uuid.UUID) (request.Role, bool) {
	switch companyID {
	case c.ClientID:
		return request.RoleClient, true
	case c.VendorID:
		return request.RoleVendor, true
	}

	return "", false
}

// CounterpartyID returns the other side's company for a participant role.
func (c *Contract) CounterpartyID(role request.Role) uuid.UUID {
	if role == request.RoleClient {
		return c.VendorID
	}

	return c.ClientID
}

// AgreedAt returns the agreement marker for the given role.
func (c *Contract) AgreedAt(role request.Role) *time.Time {
	if role == request.RoleVendor {
		return c.VendorAgreedAt
	}

	return c.ClientAgreedAt
}

// BothAgreed reports whether both counterparties have signed off on the
// current terms.
func (c *Contract) BothAgreed() bool {
	return c.VendorAgreedAt != nil && c.ClientAgreedAt != nil
}

// transitions lists the manual status moves. draft->accepted is driven by
// the dual-agreement path, never requested directly.
var transitions = map[Status][]Status{
	StatusDraft:    {StatusCancelled},
	StatusSent:     {StatusCancelled},
	StatusAccepted: {StatusActive, StatusCancelled},
	StatusActive:   {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a manual move between statuses is legal.
// Either participant may make any legal manual move.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}
