package timesheet

import (
	"time"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/timesheet"
)

type entryResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
}

type timesheetResponse struct {
	ID         uuid.UUID        `json:"id"`
	ContractID uuid.UUID        `json:"contract_id"`
	WeekStart  time.Time        `json:"week_start"`
	WeekEnd    time.Time        `json:"week_end"`
	TotalHours float64          `json:"total_hours"`
	Status     timesheet.Status `json:"status"`

	RejectionReason *string `json:"rejection_reason,omitempty"`

	Entries []entryResponse `json:"entries,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(ts *timesheet.Timesheet) timesheetResponse {
	resp := timesheetResponse{
		ID:              ts.ID,
		ContractID:      ts.ContractID,
		WeekStart:       ts.WeekStart,
		WeekEnd:         ts.WeekEnd,
		TotalHours:      ts.TotalHours,
		Status:          ts.Status,
		RejectionReason: ts.RejectionReason,
		CreatedAt:       ts.CreatedAt,
		UpdatedAt:       ts.UpdatedAt,
	}

	for _, e := range ts.Entries {
		resp.Entries = append(resp.Entries, entryResponse{
			ID:          e.ID,
			Date:        e.Date,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}

	return resp
}

func toResponseList(timesheets []*timesheet.Timesheet) []timesheetResponse {
	resp := make([]timesheetResponse, len(timesheets))
	for i, ts := range timesheets {
		resp[i] = toResponse(ts)
	}

	return resp
}
