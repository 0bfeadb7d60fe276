package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/finalize"
	"github.com/benchlane/benchlane/internal/request"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectRequestColumns = `
	id, client_id, vendor_id, listing_id, status, agreed_rate_cents,
	start_date, end_date, offered_rate_cents, offered_start_date,
	offered_end_date, offer_notes, offer_sent_at, created_at, updated_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(s scanner) (*request.Request, error) {
	var r request.Request

	var statusStr string

	if err := s.Scan(
		&r.ID, &r.ClientID, &r.VendorID, &r.ListingID, &statusStr, &r.AgreedRateCents,
		&r.StartDate, &r.EndDate, &r.OfferedRateCents, &r.OfferedStartDate,
		&r.OfferedEndDate, &r.OfferNotes, &r.OfferSentAt, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Status = request.Status(statusStr)

	return &r, nil
}

func (s *Store) GetRequest(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM requests WHERE id = $1`

	r, err := scanRequest(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting request: %w", err)
	}

	return r, nil
}

type confirmTx struct {
	tx *sql.Tx
}

func (s *Store) BeginConfirm(ctx context.Context) (finalize.ConfirmTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning confirm tx: %w", err)
	}

	return &confirmTx{tx: dbTx}, nil
}

func (ftx *confirmTx) Commit() error   { return ftx.tx.Commit() }
func (ftx *confirmTx) Rollback() error { return ftx.tx.Rollback() }

func (ftx *confirmTx) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	query := `SELECT ` + selectRequestColumns + ` FROM requests WHERE id = $1 FOR UPDATE`

	r, err := scanRequest(ftx.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("locking request: %w", err)
	}

	return r, nil
}

func (ftx *confirmTx) UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to request.Status) error {
	query := `
		UPDATE requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := ftx.tx.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating request status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking request status update: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("request", string(from), string(to))
	}

	return nil
}

func (ftx *confirmTx) CreateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (request_id, client_id, vendor_id, title, terms, hourly_rate_cents, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := ftx.tx.QueryRowContext(ctx, query,
		c.RequestID, c.ClientID, c.VendorID, c.Title, c.Terms,
		c.HourlyRateCents, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}

	return nil
}

func (ftx *confirmTx) ConsumeDealCredit(ctx context.Context, companyID uuid.UUID) error {
	query := `
		UPDATE companies
		SET deal_credits = deal_credits - 1
		WHERE id = $1 AND founding_member AND deal_credits > 0
	`

	if _, err := ftx.tx.ExecContext(ctx, query, companyID); err != nil {
		return fmt.Errorf("consuming deal credit: %w", err)
	}

	return nil
}
