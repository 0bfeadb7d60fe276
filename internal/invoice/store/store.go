package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/invoice"
	"github.com/benchlane/benchlane/internal/timesheet"
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

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, contract_id, number, amount_cents, period_start, period_end, due_date, status, created_at, updated_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr string

	if err := s.Scan(
		&inv.ID, &inv.ContractID, &inv.Number, &inv.AmountCents,
		&inv.PeriodStart, &inv.PeriodEnd, &inv.DueDate, &statusStr,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

const selectInvoiceColumns = `
	id, contract_id, number, amount_cents, period_start, period_end, due_date, status,
	created_at, updated_at
`

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if err := s.loadLineItems(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) loadLineItems(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		SELECT id, invoice_id, timesheet_id, week_start, week_end, hours, rate_cents, subtotal_cents
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY week_start ASC
	`

	rows, err := s.db.QueryContext(ctx, query, inv.ID)
	if err != nil {
		return fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var li invoice.LineItem
		if err := rows.Scan(
			&li.ID, &li.InvoiceID, &li.TimesheetID, &li.WeekStart, &li.WeekEnd,
			&li.Hours, &li.RateCents, &li.AmountCents,
		); err != nil {
			return fmt.Errorf("scanning line item: %w", err)
		}

		inv.LineItems = append(inv.LineItems, &li)
	}

	return rows.Err()
}

func (s *Store) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE contract_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to invoice.Status) error {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking invoice status update: %w", err)
	}

	if affected == 0 {
		return apperr.NewInvalidTransition("invoice", string(from), string(to))
	}

	return nil
}

// numberingLockKey buckets the advisory lock per numbering year so that
// generations for different years never serialize against each other.
func numberingLockKey(year int) int64 {
	h := fnv.New64a()
	h.Write([]byte("invoice-number"))
	h.Write([]byte{0})
	h.Write([]byte(fmt.Sprintf("%d", year)))

	return int64(h.Sum64())
}

type generateTx struct {
	tx *sql.Tx
}

func (s *Store) BeginGenerate(ctx context.Context, year int) (invoice.GenerateTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning generate tx: %w", err)
	}

	lockKey := numberingLockKey(year)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring numbering lock: %w", err)
	}

	return &generateTx{tx: dbTx}, nil
}

func (gtx *generateTx) Commit() error   { return gtx.tx.Commit() }
func (gtx *generateTx) Rollback() error { return gtx.tx.Rollback() }

func (gtx *generateTx) LockTimesheets(ctx context.Context, contractID uuid.UUID, ids []uuid.UUID) ([]*invoice.BillableTimesheet, error) {
	query := `
		SELECT t.id, t.week_start, t.week_end, t.total_hours, t.status,
		       EXISTS (
		           SELECT 1 FROM invoice_line_items li
		           JOIN invoices i ON i.id = li.invoice_id
		           WHERE li.timesheet_id = t.id AND i.status <> 'cancelled'
		       ) AS invoiced
		FROM timesheets t
		WHERE t.contract_id = $1 AND t.id = ANY($2::uuid[])
		FOR UPDATE OF t
	`

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	rows, err := gtx.tx.QueryContext(ctx, query, contractID, idStrs)
	if err != nil {
		return nil, fmt.Errorf("locking timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []*invoice.BillableTimesheet

	for rows.Next() {
		var ts invoice.BillableTimesheet

		var statusStr string

		if err := rows.Scan(&ts.ID, &ts.WeekStart, &ts.WeekEnd, &ts.TotalHours, &statusStr, &ts.Invoiced); err != nil {
			return nil, fmt.Errorf("scanning timesheet: %w", err)
		}

		ts.Status = timesheet.Status(statusStr)
		sheets = append(sheets, &ts)
	}

	return sheets, rows.Err()
}

func (gtx *generateTx) CountForYear(ctx context.Context, year int) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE number LIKE $1`

	var count int
	if err := gtx.tx.QueryRowContext(ctx, query, fmt.Sprintf("INV-%d-%%", year)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

func (gtx *generateTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (contract_id, number, amount_cents, period_start, period_end, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := gtx.tx.QueryRowContext(ctx, query,
		inv.ContractID,
		inv.Number,
		inv.AmountCents,
		inv.PeriodStart,
		inv.PeriodEnd,
		inv.DueDate,
		inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_line_items (invoice_id, timesheet_id, week_start, week_end, hours, rate_cents, subtotal_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for _, li := range inv.LineItems {
		li.InvoiceID = inv.ID

		if err := gtx.tx.QueryRowContext(ctx, itemQuery,
			li.InvoiceID,
			li.TimesheetID,
			li.WeekStart,
			li.WeekEnd,
			li.Hours,
			li.RateCents,
			li.AmountCents,
		).Scan(&li.ID); err != nil {
			return fmt.Errorf("creating line item: %w", err)
		}
	}

	return nil
}
