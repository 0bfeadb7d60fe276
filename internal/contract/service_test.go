package contract_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/request"
)

type fixture struct {
	repo     *contract.MockRepository
	notifier *contract.MockNotifier
	svc      *contract.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     contract.NewMockRepository(ctrl),
		notifier: contract.NewMockNotifier(ctrl),
	}
	f.notifier.EXPECT().NotifyCompany(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.svc = contract.NewService(f.repo, f.notifier)

	return f
}

func draftContract(clientID, vendorID uuid.UUID) *contract.Contract {
	return &contract.Contract{
		ID:              uuid.New(),
		RequestID:       uuid.New(),
		ClientID:        clientID,
		VendorID:        vendorID,
		Title:           "Backend engagement",
		HourlyRateCents: 6000,
		StartDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:          contract.StatusDraft,
	}
}

func TestService_Agree_DualAgreement(t *testing.T) {
	client := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}
	vendor := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}

	t.Run("FirstAgreeKeepsDraft", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		now := time.Now()
		stamped := *c
		stamped.VendorAgreedAt = &now

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().SetAgreement(gomock.Any(), c.ID, request.RoleVendor).Return(&stamped, nil)

		got, err := f.svc.Agree(context.Background(), vendor, c.ID)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusDraft, got.Status)
		assert.NotNil(t, got.VendorAgreedAt)
		assert.Nil(t, got.ClientAgreedAt)
	})

	t.Run("SecondAgreeFlipsToAccepted", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		earlier := time.Now().Add(-time.Hour)
		c.VendorAgreedAt = &earlier

		now := time.Now()
		both := *c
		both.ClientAgreedAt = &now
		both.Status = contract.StatusAccepted

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().SetAgreement(gomock.Any(), c.ID, request.RoleClient).Return(&both, nil)

		got, err := f.svc.Agree(context.Background(), client, c.ID)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusAccepted, got.Status)
		assert.True(t, got.BothAgreed())
	})

	t.Run("ReAgreeIsIdempotent", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		original := time.Now().Add(-time.Hour)
		c.VendorAgreedAt = &original

		// No SetAgreement call: the existing stamp is returned untouched.
		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		got, err := f.svc.Agree(context.Background(), vendor, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got.VendorAgreedAt)
		assert.Equal(t, original, *got.VendorAgreedAt)
	})

	t.Run("OutsiderSeesNotFound", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		_, err := f.svc.Agree(context.Background(), identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}, c.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("CancelledContractCannotBeAgreed", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)
		c.Status = contract.StatusCancelled

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		_, err := f.svc.Agree(context.Background(), vendor, c.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}

func TestService_UpdateTerms(t *testing.T) {
	client := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}
	vendor := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}

	params := contract.TermsParams{
		Title:           "Backend engagement",
		Terms:           "Updated scope",
		HourlyRateCents: 6500,
		StartDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	t.Run("EditResetsBothMarkers", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		now := time.Now()
		c.VendorAgreedAt = &now
		c.ClientAgreedAt = &now

		cleared := *c
		cleared.HourlyRateCents = params.HourlyRateCents
		cleared.VendorAgreedAt = nil
		cleared.ClientAgreedAt = nil

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().UpdateTerms(gomock.Any(), c.ID, params).Return(&cleared, nil)

		got, err := f.svc.UpdateTerms(context.Background(), client, c.ID, params)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusDraft, got.Status)
		assert.Nil(t, got.VendorAgreedAt)
		assert.Nil(t, got.ClientAgreedAt)
		assert.Equal(t, int64(6500), got.HourlyRateCents)
	})

	t.Run("OnlyDraftIsEditable", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)
		c.Status = contract.StatusActive

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		_, err := f.svc.UpdateTerms(context.Background(), client, c.ID, params)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("RejectsNonPositiveRate", func(t *testing.T) {
		f := newFixture(t)

		bad := params
		bad.HourlyRateCents = -1

		_, err := f.svc.UpdateTerms(context.Background(), client, uuid.New(), bad)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestService_ManualTransitions(t *testing.T) {
	client := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}
	vendor := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}

	t.Run("ActivateAccepted", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)
		c.Status = contract.StatusAccepted

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), c.ID, contract.StatusAccepted, contract.StatusActive).Return(nil)

		got, err := f.svc.Activate(context.Background(), vendor, c.ID)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusActive, got.Status)
	})

	t.Run("CannotActivateDraft", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		_, err := f.svc.Activate(context.Background(), vendor, c.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("CancelFromDraft", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), c.ID, contract.StatusDraft, contract.StatusCancelled).Return(nil)

		got, err := f.svc.Cancel(context.Background(), client, c.ID)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusCancelled, got.Status)
	})

	t.Run("CompletedIsTerminal", func(t *testing.T) {
		f := newFixture(t)
		c := draftContract(client.CompanyID, vendor.CompanyID)
		c.Status = contract.StatusCompleted

		f.repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		_, err := f.svc.Cancel(context.Background(), client, c.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}

func TestAgreementMarkersMatchStatus(t *testing.T) {
	// Both markers set iff the contract has advanced past draft/sent.
	now := time.Now()

	c := &contract.Contract{Status: contract.StatusAccepted, VendorAgreedAt: &now, ClientAgreedAt: &now}
	assert.True(t, c.BothAgreed())

	c = &contract.Contract{Status: contract.StatusDraft, VendorAgreedAt: &now}
	assert.False(t, c.BothAgreed())
}
