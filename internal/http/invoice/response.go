package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/invoice"
)

type lineItemResponse struct {
	ID          uuid.UUID `json:"id"`
	TimesheetID uuid.UUID `json:"timesheet_id"`
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	Hours       float64   `json:"hours"`
	RateCents   int64     `json:"rate_cents"`
	AmountCents int64     `json:"amount_cents"`
}

type invoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	ContractID uuid.UUID `json:"contract_id"`
	Number     string    `json:"number"`

	AmountCents int64          `json:"amount_cents"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	DueDate     time.Time      `json:"due_date"`
	Status      invoice.Status `json:"status"`

	LineItems []lineItemResponse `json:"line_items,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:          inv.ID,
		ContractID:  inv.ContractID,
		Number:      inv.Number,
		AmountCents: inv.AmountCents,
		PeriodStart: inv.PeriodStart,
		PeriodEnd:   inv.PeriodEnd,
		DueDate:     inv.DueDate,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}

	for _, li := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, lineItemResponse{
			ID:          li.ID,
			TimesheetID: li.TimesheetID,
			WeekStart:   li.WeekStart,
			WeekEnd:     li.WeekEnd,
			Hours:       li.Hours,
			RateCents:   li.RateCents,
			AmountCents: li.AmountCents,
		})
	}

	return resp
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
