// Package request owns the engagement request entity and its state
// machine, including the vendor-proposed offer sub-workflow.
package request

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an engagement request.
type Status string

const (
	StatusPending     Status = "pending"
	StatusNegotiating Status = "negotiating"
	StatusOfferSent   Status = "offer_sent"
	StatusAccepted    Status = "accepted"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusRejected    Status = "rejected"
	StatusCancelled   Status = "cancelled"
)

// Role is the side a company plays in a request.
type Role string

const (
	RoleClient Role = "client"
	RoleVendor Role = "vendor"
)

// Request is one engagement proposal between a client company (wants to
// hire) and a vendor company (owns the listing). It is never deleted, only
// moved to a terminal status.
type Request struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	VendorID  uuid.UUID
	ListingID uuid.UUID
	Status    Status

	// AgreedRateCents snapshots the listing rate at creation time.
	AgreedRateCents int64
	StartDate       time.Time
	EndDate         time.Time

	// Offer fields, all nil until the vendor sends an offer.
	OfferedRateCents *int64
	OfferedStartDate *time.Time
	OfferedEndDate   *time.Time
	OfferNotes       *string
	OfferSentAt      *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// RoleOf returns the role the given company plays in this request, or false
// if the company is not a participant.
func (r *Request) RoleOf(companyID uuid.UUID) (Role, bool) {
	switch companyID {
	case r.ClientID:
		return RoleClient, true
	case r.VendorID:
		return RoleVendor, true
	}

	return "", false
}

// CounterpartyID returns the other side's company for a participant role.
func (r *Request) CounterpartyID(role Role) uuid.UUID {
	if role == RoleClient {
		return r.VendorID
	}

	return r.ClientID
}

// HasOffer reports whether an offer is currently attached.
func (r *Request) HasOffer() bool {
	return r.OfferedRateCents != nil
}
