package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/conversation"
	"github.com/benchlane/benchlane/internal/request"
)

type requestResponse struct {
	ID              uuid.UUID      `json:"id"`
	ClientID        uuid.UUID      `json:"client_id"`
	VendorID        uuid.UUID      `json:"vendor_id"`
	ListingID       uuid.UUID      `json:"listing_id"`
	Status          request.Status `json:"status"`
	AgreedRateCents int64          `json:"agreed_rate_cents"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`

	OfferedRateCents *int64     `json:"offered_rate_cents,omitempty"`
	OfferedStartDate *time.Time `json:"offered_start_date,omitempty"`
	OfferedEndDate   *time.Time `json:"offered_end_date,omitempty"`
	OfferNotes       *string    `json:"offer_notes,omitempty"`
	OfferSentAt      *time.Time `json:"offer_sent_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(r *request.Request) requestResponse {
	return requestResponse{
		ID:               r.ID,
		ClientID:         r.ClientID,
		VendorID:         r.VendorID,
		ListingID:        r.ListingID,
		Status:           r.Status,
		AgreedRateCents:  r.AgreedRateCents,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		OfferedRateCents: r.OfferedRateCents,
		OfferedStartDate: r.OfferedStartDate,
		OfferedEndDate:   r.OfferedEndDate,
		OfferNotes:       r.OfferNotes,
		OfferSentAt:      r.OfferSentAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toResponseList(requests []*request.Request) []requestResponse {
	resp := make([]requestResponse, len(requests))
	for i, r := range requests {
		resp[i] = toResponse(r)
	}

	return resp
}

type messageResponse struct {
	ID           uuid.UUID `json:"id"`
	SenderUserID uuid.UUID `json:"sender_user_id"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}

func toMessage(m *conversation.Message) messageResponse {
	return messageResponse{
		ID:           m.ID,
		SenderUserID: m.SenderUserID,
		Body:         m.Body,
		CreatedAt:    m.CreatedAt,
	}
}

func toMessageList(messages []*conversation.Message) []messageResponse {
	resp := make([]messageResponse, len(messages))
	for i, m := range messages {
		resp[i] = toMessage(m)
	}

	return resp
}
