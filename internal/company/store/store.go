package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetCompany(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	query := `
		SELECT id, name, founding_member, deal_credits, created_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.FoundingMember, &c.DealCredits, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	return &c, nil
}

func (s *Store) GetListing(ctx context.Context, id uuid.UUID) (*company.Listing, error) {
	query := `
		SELECT id, company_id, title, hourly_rate_cents, active, created_at
		FROM listings
		WHERE id = $1
	`

	var l company.Listing

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.HourlyRateCents, &l.Active, &l.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting listing: %w", err)
	}

	return &l, nil
}

func (s *Store) MemberIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM users WHERE company_id = $1`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing company members: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning member id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return ids, nil
}
