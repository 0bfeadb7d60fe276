package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/timesheet"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTimesheetColumns = `
	id, contract_id, week_start, week_end, total_hours, status,
	rejection_reason, created_at, updated_at
`

func scanTimesheet(s scanner) (*timesheet.Timesheet, error) {
	var ts timesheet.Timesheet

	var statusStr string

	if err := s.Scan(
		&ts.ID, &ts.ContractID, &ts.WeekStart, &ts.WeekEnd, &ts.TotalHours, &statusStr,
		&ts.RejectionReason, &ts.CreatedAt, &ts.UpdatedAt,
	); err != nil {
		return nil, err
	}

	ts.Status = timesheet.Status(statusStr)

	return &ts, nil
}

// CreateTimesheet inserts the timesheet and its entries in one database
// transaction. The (contract_id, week_start) unique index enforces the
// one-per-week invariant; a violation surfaces as ErrAlreadyProcessed.
func (s *Store) CreateTimesheet(ctx context.Context, ts *timesheet.Timesheet) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO timesheets (contract_id, week_start, week_end, total_hours, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		ts.ContractID, ts.WeekStart, ts.WeekEnd, ts.TotalHours, ts.Status,
	).Scan(&ts.ID, &ts.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("timesheet for this week exists: %w", apperr.ErrAlreadyProcessed)
		}

		return fmt.Errorf("creating timesheet: %w", err)
	}

	entryQuery := `
		INSERT INTO timesheet_entries (timesheet_id, entry_date, hours, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for _, e := range ts.Entries {
		e.TimesheetID = ts.ID

		if err := dbTx.QueryRowContext(ctx, entryQuery, ts.ID, e.Date, e.Hours, e.Description).Scan(&e.ID); err != nil {
			return fmt.Errorf("creating timesheet entry: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing timesheet: %w", err)
	}

	return nil
}

func (s *Store) GetTimesheet(ctx context.Context, id uuid.UUID) (*timesheet.Timesheet, error) {
	query := `SELECT ` + selectTimesheetColumns + ` FROM timesheets WHERE id = $1`

	ts, err := scanTimesheet(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting timesheet: %w", err)
	}

	if err := s.loadEntries(ctx, ts); err != nil {
		return nil, err
	}

	return ts, nil
}

func (s *Store) loadEntries(ctx context.Context, ts *timesheet.Timesheet) error {
	query := `
		SELECT id, timesheet_id, entry_date, hours, description
		FROM timesheet_entries
		WHERE timesheet_id = $1
		ORDER BY entry_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ts.ID)
	if err != nil {
		return fmt.Errorf("listing timesheet entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(&e.ID, &e.TimesheetID, &e.Date, &e.Hours, &e.Description); err != nil {
			return fmt.Errorf("scanning timesheet entry: %w", err)
		}

		ts.Entries = append(ts.Entries, &e)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating entry rows: %w", err)
	}

	return nil
}

func (s *Store) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*timesheet.Timesheet, error) {
	query := `SELECT ` + selectTimesheetColumns + `
		FROM timesheets
		WHERE contract_id = $1
		ORDER BY week_start ASC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []*timesheet.Timesheet

	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning timesheet: %w", err)
		}

		sheets = append(sheets, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timesheet rows: %w", err)
	}

	return sheets, nil
}

// UpdateStatus writes the new status only if the row still holds the
// expected one.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to timesheet.Status, reason *string) error {
	query := `
		UPDATE timesheets
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	res, err := s.db.ExecContext(ctx, query, to, reason, id, from)
	if err != nil {
		return fmt.Errorf("updating timesheet status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking timesheet status update: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("timesheet", string(from), string(to))
	}

	return nil
}
