package invoice_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/invoice"
	"github.com/benchlane/benchlane/internal/timesheet"
)

type fixture struct {
	ctrl      *gomock.Controller
	repo      *invoice.MockRepository
	contracts *invoice.MockContractDirectory
	notifier  *invoice.MockNotifier
	svc       *invoice.Service

	client identity.ActingCompany
	vendor identity.ActingCompany
	c      *contract.Contract
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:      ctrl,
		repo:      invoice.NewMockRepository(ctrl),
		contracts: invoice.NewMockContractDirectory(ctrl),
		notifier:  invoice.NewMockNotifier(ctrl),
		client:    identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()},
		vendor:    identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()},
	}

	f.c = &contract.Contract{
		ID:              uuid.New(),
		ClientID:        f.client.CompanyID,
		VendorID:        f.vendor.CompanyID,
		HourlyRateCents: 5000,
		Status:          contract.StatusActive,
	}

	f.notifier.EXPECT().NotifyCompany(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.svc = invoice.NewService(f.repo, f.contracts, f.notifier, 14)

	return f
}

func approvedSheet(weekOf time.Time, hours float64) *invoice.BillableTimesheet {
	start, end := timesheet.WeekBounds(weekOf)

	return &invoice.BillableTimesheet{
		ID:         uuid.New(),
		WeekStart:  start,
		WeekEnd:    end,
		TotalHours: hours,
		Status:     timesheet.StatusApproved,
	}
}

func TestService_Generate(t *testing.T) {
	week1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	t.Run("TwoWeeks", func(t *testing.T) {
		f := newFixture(t)

		ts1 := approvedSheet(week1, 40)
		ts2 := approvedSheet(week2, 35)
		ids := []uuid.UUID{ts1.ID, ts2.ID}

		tx := invoice.NewMockGenerateTx(f.ctrl)
		year := time.Now().UTC().Year()

		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().BeginGenerate(gomock.Any(), year).Return(tx, nil)
		tx.EXPECT().LockTimesheets(gomock.Any(), f.c.ID, ids).Return([]*invoice.BillableTimesheet{ts1, ts2}, nil)
		tx.EXPECT().CountForYear(gomock.Any(), year).Return(2, nil)
		tx.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		inv, err := f.svc.Generate(context.Background(), f.vendor, invoice.GenerateParams{
			ContractID:   f.c.ID,
			TimesheetIDs: ids,
		})
		require.NoError(t, err)

		// 75 hours at €50.00/h.
		assert.Equal(t, int64(375000), inv.AmountCents)
		assert.Equal(t, fmt.Sprintf("INV-%d-0003", year), inv.Number)
		assert.Equal(t, invoice.StatusDraft, inv.Status)

		require.Len(t, inv.LineItems, 2)
		assert.Equal(t, int64(200000), inv.LineItems[0].AmountCents)
		assert.Equal(t, int64(175000), inv.LineItems[1].AmountCents)

		var sum int64
		for _, li := range inv.LineItems {
			sum += li.AmountCents
		}
		assert.Equal(t, inv.AmountCents, sum)

		assert.Equal(t, ts1.WeekStart, inv.PeriodStart)
		assert.Equal(t, ts2.WeekEnd, inv.PeriodEnd)
		assert.Equal(t, ts2.WeekEnd.AddDate(0, 0, 14), inv.DueDate)
	})

	t.Run("ClientCannotGenerate", func(t *testing.T) {
		f := newFixture(t)

		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)

		_, err := f.svc.Generate(context.Background(), f.client, invoice.GenerateParams{
			ContractID:   f.c.ID,
			TimesheetIDs: []uuid.UUID{uuid.New()},
		})
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("EmptySelection", func(t *testing.T) {
		f := newFixture(t)

		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)

		_, err := f.svc.Generate(context.Background(), f.vendor, invoice.GenerateParams{ContractID: f.c.ID})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("UnapprovedTimesheet", func(t *testing.T) {
		f := newFixture(t)

		ts := approvedSheet(week1, 40)
		ts.Status = timesheet.StatusSubmitted

		tx := invoice.NewMockGenerateTx(f.ctrl)

		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().BeginGenerate(gomock.Any(), gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockTimesheets(gomock.Any(), f.c.ID, []uuid.UUID{ts.ID}).Return([]*invoice.BillableTimesheet{ts}, nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := f.svc.Generate(context.Background(), f.vendor, invoice.GenerateParams{
			ContractID:   f.c.ID,
			TimesheetIDs: []uuid.UUID{ts.ID},
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("AlreadyInvoiced", func(t *testing.T) {
		f := newFixture(t)

		ts := approvedSheet(week1, 40)
		ts.Invoiced = true

		tx := invoice.NewMockGenerateTx(f.ctrl)

		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().BeginGenerate(gomock.Any(), gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockTimesheets(gomock.Any(), f.c.ID, []uuid.UUID{ts.ID}).Return([]*invoice.BillableTimesheet{ts}, nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := f.svc.Generate(context.Background(), f.vendor, invoice.GenerateParams{
			ContractID:   f.c.ID,
			TimesheetIDs: []uuid.UUID{ts.ID},
		})
		assert.ErrorIs(t, err, apperr.ErrAlreadyProcessed)
	})

	t.Run("UnknownTimesheet", func(t *testing.T) {
		f := newFixture(t)

		tx := invoice.NewMockGenerateTx(f.ctrl)
		missing := uuid.New()

		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().BeginGenerate(gomock.Any(), gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockTimesheets(gomock.Any(), f.c.ID, []uuid.UUID{missing}).Return(nil, nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := f.svc.Generate(context.Background(), f.vendor, invoice.GenerateParams{
			ContractID:   f.c.ID,
			TimesheetIDs: []uuid.UUID{missing},
		})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("DuplicateIDsCollapse", func(t *testing.T) {
		f := newFixture(t)

		ts := approvedSheet(week1, 40)

		tx := invoice.NewMockGenerateTx(f.ctrl)

		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().BeginGenerate(gomock.Any(), gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockTimesheets(gomock.Any(), f.c.ID, []uuid.UUID{ts.ID}).Return([]*invoice.BillableTimesheet{ts}, nil)
		tx.EXPECT().CountForYear(gomock.Any(), gomock.Any()).Return(0, nil)
		tx.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		inv, err := f.svc.Generate(context.Background(), f.vendor, invoice.GenerateParams{
			ContractID:   f.c.ID,
			TimesheetIDs: []uuid.UUID{ts.ID, ts.ID},
		})
		require.NoError(t, err)
		assert.Len(t, inv.LineItems, 1)
	})
}

func draftInvoice(f *fixture) *invoice.Invoice {
	return &invoice.Invoice{
		ID:          uuid.New(),
		ContractID:  f.c.ID,
		Number:      "INV-2025-0001",
		AmountCents: 375000,
		PeriodEnd:   time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC),
		Status:      invoice.StatusDraft,
	}
}

func TestService_MarkSent(t *testing.T) {
	t.Run("VendorSendsDraft", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), inv.ID, invoice.StatusDraft, invoice.StatusSent).Return(nil)

		got, err := f.svc.MarkSent(context.Background(), f.vendor, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusSent, got.Status)
	})

	t.Run("ClientCannotSend", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)

		_, err := f.svc.MarkSent(context.Background(), f.client, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestService_MarkOverdue(t *testing.T) {
	t.Run("VendorFlagsPastDue", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusSent

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), inv.ID, invoice.StatusSent, invoice.StatusOverdue).Return(nil)

		got, err := f.svc.MarkOverdue(context.Background(), f.vendor, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusOverdue, got.Status)
	})

	t.Run("NotYetDue", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusSent
		inv.DueDate = time.Now().Add(48 * time.Hour)

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)

		_, err := f.svc.MarkOverdue(context.Background(), f.vendor, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("ClientCannotFlag", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusSent

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)

		_, err := f.svc.MarkOverdue(context.Background(), f.client, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("DraftCannotBeOverdue", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)

		_, err := f.svc.MarkOverdue(context.Background(), f.vendor, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}

func TestService_MarkPaid(t *testing.T) {
	t.Run("ClientPaysSent", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusSent

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), inv.ID, invoice.StatusSent, invoice.StatusPaid).Return(nil)

		got, err := f.svc.MarkPaid(context.Background(), f.client, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, got.Status)
	})

	t.Run("OverdueIsPayable", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusOverdue

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), inv.ID, invoice.StatusOverdue, invoice.StatusPaid).Return(nil)

		_, err := f.svc.MarkPaid(context.Background(), f.client, inv.ID)
		require.NoError(t, err)
	})

	t.Run("DoublePayFails", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusPaid

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)

		_, err := f.svc.MarkPaid(context.Background(), f.client, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrAlreadyProcessed)
	})

	t.Run("DraftIsNotPayable", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.client, f.c.ID).Return(f.c, nil)

		_, err := f.svc.MarkPaid(context.Background(), f.client, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("VendorCancelsSent", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusSent

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), inv.ID, invoice.StatusSent, invoice.StatusCancelled).Return(nil)

		got, err := f.svc.Cancel(context.Background(), f.vendor, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusCancelled, got.Status)
	})

	t.Run("PaidIsFinal", func(t *testing.T) {
		f := newFixture(t)
		inv := draftInvoice(f)
		inv.Status = invoice.StatusPaid

		f.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
		f.contracts.EXPECT().Get(gomock.Any(), f.vendor, f.c.ID).Return(f.c, nil)

		_, err := f.svc.Cancel(context.Background(), f.vendor, inv.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}
