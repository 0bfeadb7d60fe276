package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/request"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRequestColumns = `
	id, client_id, vendor_id, listing_id, status, agreed_rate_cents,
	start_date, end_date, offered_rate_cents, offered_start_date,
	offered_end_date, offer_notes, offer_sent_at, created_at, updated_at
`

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

func (s *Store) CreateRequest(ctx context.Context, r *request.Request) error {
	query := `
		INSERT INTO requests (client_id, vendor_id, listing_id, status, agreed_rate_cents, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.ClientID, r.VendorID, r.ListingID, r.Status, r.AgreedRateCents, r.StartDate, r.EndDate,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	return nil
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

func (s *Store) ListRequests(ctx context.Context, filter request.ListFilter) ([]*request.Request, error) {
	query := `SELECT ` + selectRequestColumns + `
		FROM requests
		WHERE (client_id = $1 OR vendor_id = $1)`

	args := []any{filter.CompanyID}

	if filter.Status != nil {
		query += " AND status = $2"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	var reqs []*request.Request

	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}

		reqs = append(reqs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating request rows: %w", err)
	}

	return reqs, nil
}

// UpdateStatus writes the new status only if the row still holds the
// expected one, serializing racing transitions.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to request.Status) error {
	query := `
		UPDATE requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating request status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status update: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("request", string(from), string(to))
	}

	return nil
}

func (s *Store) SetOffer(ctx context.Context, id uuid.UUID, from request.Status, offer request.Offer) error {
	query := `
		UPDATE requests
		SET status = $1, offered_rate_cents = $2, offered_start_date = $3,
			offered_end_date = $4, offer_notes = $5, offer_sent_at = $6, updated_at = NOW()
		WHERE id = $7 AND status = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		request.StatusOfferSent, offer.RateCents, offer.StartDate, offer.EndDate,
		offer.Notes, offer.SentAt, id, from,
	)
	if err != nil {
		return fmt.Errorf("setting offer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking offer update: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("request", string(from), string(request.StatusOfferSent))
	}

	return nil
}

// ClearOffer withdraws the offer: every offer field is nulled and the
// request returns to negotiating.
func (s *Store) ClearOffer(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE requests
		SET status = $1, offered_rate_cents = NULL, offered_start_date = NULL,
			offered_end_date = NULL, offer_notes = NULL, offer_sent_at = NULL, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, request.StatusNegotiating, id, request.StatusOfferSent)
	if err != nil {
		return fmt.Errorf("clearing offer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking offer clear: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("request", string(request.StatusOfferSent), string(request.StatusNegotiating))
	}

	return nil
}
