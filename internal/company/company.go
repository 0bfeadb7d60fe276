// Package company holds the read model of companies and listings the
// lifecycle needs: notification fan-out, founding-member fee discounts and
// the listing a request is created against. Company CRUD itself lives
// elsewhere.
package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID             uuid.UUID
	Name           string
	FoundingMember bool
	DealCredits    int
	CreatedAt      time.Time
}

// HasDealCredit reports whether the company qualifies for the discounted
// finalization fee right now.
func (c *Company) HasDealCredit() bool {
	return c.FoundingMember && c.DealCredits > 0
}

// Listing is a published bench-capacity offering owned by a vendor company.
type Listing struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Title           string
	HourlyRateCents int64
	Active          bool
	CreatedAt       time.Time
}
