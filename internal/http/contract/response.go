package contract

import (
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/contract"
)

type contractResponse struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	ClientID  uuid.UUID `json:"client_id"`
	VendorID  uuid.UUID `json:"vendor_id"`

	Title           string    `json:"title"`
	Terms           string    `json:"terms,omitempty"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`

	Status contract.Status `json:"status"`

	VendorAgreedAt *time.Time `json:"vendor_agreed_at,omitempty"`
	ClientAgreedAt *time.Time `json:"client_agreed_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *contract.Contract) contractResponse {
	return contractResponse{
		ID:              c.ID,
		RequestID:       c.RequestID,
		ClientID:        c.ClientID,
		VendorID:        c.VendorID,
		Title:           c.Title,
		Terms:           c.Terms,
		HourlyRateCents: c.HourlyRateCents,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Status:          c.Status,
		VendorAgreedAt:  c.VendorAgreedAt,
		ClientAgreedAt:  c.ClientAgreedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toResponseList(contracts []*contract.Contract) []contractResponse {
	resp := make([]contractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toResponse(c)
	}

	return resp
}
