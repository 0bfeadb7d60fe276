package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/request"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectContractColumns = `
	id, request_id, client_id, vendor_id, title, terms, hourly_rate_cents,
	start_date, end_date, status, vendor_agreed_at, client_agreed_at,
	created_at, updated_at
`

func scanContract(s scanner) (*contract.Contract, error) {
	var c contract.Contract

	var statusStr string

	if err := s.Scan(
		&c.ID, &c.RequestID, &c.ClientID, &c.VendorID, &c.Title, &c.Terms, &c.HourlyRateCents,
		&c.StartDate, &c.EndDate, &statusStr, &c.VendorAgreedAt, &c.ClientAgreedAt,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = contract.Status(statusStr)

	return &c, nil
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + ` FROM contracts WHERE id = $1`

	c, err := scanContract(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting contract: %w", err)
	}

	return c, nil
}

func (s *Store) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts
		WHERE client_id = $1 OR vendor_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*contract.Contract

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contract rows: %w", err)
	}

	return contracts, nil
}

// SetAgreement stamps one side's marker and advances to accepted if the
// other side already agreed. COALESCE keeps an existing stamp, so
// re-agreeing never moves the timestamp; the CASE makes the second agree
// and the status flip one atomic write regardless of agreement order.
func (s *Store) SetAgreement(ctx context.Context, id uuid.UUID, role request.Role) (*contract.Contract, error) {
	column, other := "client_agreed_at", "vendor_agreed_at"
	if role == request.RoleVendor {
		column, other = other, column
	}

	query := fmt.Sprintf(`
		UPDATE contracts
		SET %[1]s = COALESCE(%[1]s, NOW()),
			status = CASE WHEN %[2]s IS NOT NULL THEN 'accepted' ELSE status END,
			updated_at = NOW()
		WHERE id = $1 AND status IN ('draft', 'sent')
		RETURNING `+selectContractColumns, column, other)

	c, err := scanContract(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NewInvalidTransition("contract", "", string(contract.StatusAccepted))
		}

		return nil, fmt.Errorf("setting agreement: %w", err)
	}

	return c, nil
}

// UpdateTerms rewrites the negotiable fields of a draft contract and clears
// both agreement markers in the same write.
func (s *Store) UpdateTerms(ctx context.Context, id uuid.UUID, params contract.TermsParams) (*contract.Contract, error) {
	query := `
		UPDATE contracts
		SET title = $1, terms = $2, hourly_rate_cents = $3, start_date = $4, end_date = $5,
			vendor_agreed_at = NULL, client_agreed_at = NULL, updated_at = NOW()
		WHERE id = $6 AND status = 'draft'
		RETURNING ` + selectContractColumns

	c, err := scanContract(s.db.QueryRowContext(ctx, query,
		params.Title, params.Terms, params.HourlyRateCents, params.StartDate, params.EndDate, id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NewInvalidTransition("contract", "", string(contract.StatusDraft))
		}

		return nil, fmt.Errorf("updating contract terms: %w", err)
	}

	return c, nil
}

// UpdateStatus writes the new status only if the row still holds the
// expected one.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to contract.Status) error {
	query := `
		UPDATE contracts
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating contract status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking contract status update: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("contract", string(from), string(to))
	}

	return nil
}
