package finalize_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/company"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/finalize"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/payment"
	"github.com/benchlane/benchlane/internal/request"
)

type fixture struct {
	ctrl      *gomock.Controller
	repo      *finalize.MockRepository
	companies *finalize.MockCompanyDirectory
	provider  *payment.MockProvider
	notifier  *finalize.MockNotifier
	svc       *finalize.Service

	client identity.ActingCompany
	vendor identity.ActingCompany
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:      ctrl,
		repo:      finalize.NewMockRepository(ctrl),
		companies: finalize.NewMockCompanyDirectory(ctrl),
		provider:  payment.NewMockProvider(ctrl),
		notifier:  finalize.NewMockNotifier(ctrl),
		client:    identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()},
		vendor:    identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()},
	}

	f.notifier.EXPECT().NotifyCompany(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.svc = finalize.NewService(f.repo, f.companies, f.provider, f.notifier, finalize.FeeSchedule{
		StandardCents:   49500,
		DiscountedCents: 19500,
	})

	return f
}

func (f *fixture) offerSentRequest() *request.Request {
	rate := int64(6000)
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	notes := "senior backend, 4 days a week"
	sentAt := time.Now()

	return &request.Request{
		ID:               uuid.New(),
		ClientID:         f.client.CompanyID,
		VendorID:         f.vendor.CompanyID,
		ListingID:        uuid.New(),
		Status:           request.StatusOfferSent,
		AgreedRateCents:  5500,
		OfferedRateCents: &rate,
		OfferedStartDate: &start,
		OfferedEndDate:   &end,
		OfferNotes:       &notes,
		OfferSentAt:      &sentAt,
	}
}

func TestService_StartCheckout(t *testing.T) {
	t.Run("StandardFee", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
		f.companies.EXPECT().Get(gomock.Any(), f.client.CompanyID).Return(&company.Company{ID: f.client.CompanyID}, nil)
		f.provider.EXPECT().
			CreateCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params payment.CheckoutParams) (*payment.Checkout, error) {
				assert.Equal(t, int64(49500), params.AmountCents)
				assert.Equal(t, req.ID.String(), params.Metadata["request_id"])
				assert.Equal(t, "false", params.Metadata["discounted"])
				return &payment.Checkout{ID: "co_1", URL: "https://pay.example/co_1"}, nil
			})

		session, err := f.svc.StartCheckout(context.Background(), f.client, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/co_1", session.URL)
		assert.Equal(t, int64(49500), session.AmountCents)
		assert.False(t, session.Discounted)
	})

	t.Run("FoundingMemberDiscount", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
		f.companies.EXPECT().Get(gomock.Any(), f.client.CompanyID).Return(&company.Company{
			ID:             f.client.CompanyID,
			FoundingMember: true,
			DealCredits:    2,
		}, nil)
		f.provider.EXPECT().
			CreateCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params payment.CheckoutParams) (*payment.Checkout, error) {
				assert.Equal(t, int64(19500), params.AmountCents)
				assert.Equal(t, "true", params.Metadata["discounted"])
				return &payment.Checkout{URL: "https://pay.example/co_2"}, nil
			})

		session, err := f.svc.StartCheckout(context.Background(), f.client, req.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(19500), session.AmountCents)
		assert.True(t, session.Discounted)
	})

	t.Run("ExhaustedCreditsPayFullPrice", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
		f.companies.EXPECT().Get(gomock.Any(), f.client.CompanyID).Return(&company.Company{
			ID:             f.client.CompanyID,
			FoundingMember: true,
			DealCredits:    0,
		}, nil)
		f.provider.EXPECT().
			CreateCheckout(gomock.Any(), gomock.Any()).
			Return(&payment.Checkout{URL: "https://pay.example/co_3"}, nil)

		session, err := f.svc.StartCheckout(context.Background(), f.client, req.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(49500), session.AmountCents)
	})

	t.Run("VendorCannotPay", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

		_, err := f.svc.StartCheckout(context.Background(), f.vendor, req.ID)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("OutsiderSeesNotFound", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()
		outsider := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

		_, err := f.svc.StartCheckout(context.Background(), outsider, req.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("NoOfferNoCheckout", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()
		req.Status = request.StatusNegotiating

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)

		_, err := f.svc.StartCheckout(context.Background(), f.client, req.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("ProviderUnreachable", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()

		f.repo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil)
		f.companies.EXPECT().Get(gomock.Any(), f.client.CompanyID).Return(&company.Company{ID: f.client.CompanyID}, nil)
		f.provider.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := f.svc.StartCheckout(context.Background(), f.client, req.ID)
		assert.ErrorIs(t, err, apperr.ErrExternalService)
	})
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Run("CreatesContractFromOffer", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()
		tx := finalize.NewMockConfirmTx(f.ctrl)

		f.repo.EXPECT().BeginConfirm(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
		tx.EXPECT().UpdateRequestStatus(gomock.Any(), req.ID, request.StatusOfferSent, request.StatusAccepted).Return(nil)
		f.companies.EXPECT().GetListing(gomock.Any(), req.ListingID).Return(&company.Listing{Title: "Senior Go engineer"}, nil)
		tx.EXPECT().
			CreateContract(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *contract.Contract) error {
				assert.Equal(t, req.ID, c.RequestID)
				assert.Equal(t, req.ClientID, c.ClientID)
				assert.Equal(t, req.VendorID, c.VendorID)
				assert.Equal(t, "Senior Go engineer", c.Title)
				assert.Equal(t, *req.OfferedRateCents, c.HourlyRateCents)
				assert.Equal(t, *req.OfferedStartDate, c.StartDate)
				assert.Equal(t, *req.OfferedEndDate, c.EndDate)
				assert.Equal(t, contract.StatusDraft, c.Status)
				c.ID = uuid.New()
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		err := f.svc.ConfirmPayment(context.Background(), finalize.Confirmation{RequestID: req.ID})
		require.NoError(t, err)
	})

	t.Run("DiscountedBurnsOneCredit", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()
		tx := finalize.NewMockConfirmTx(f.ctrl)

		f.repo.EXPECT().BeginConfirm(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
		tx.EXPECT().UpdateRequestStatus(gomock.Any(), req.ID, request.StatusOfferSent, request.StatusAccepted).Return(nil)
		f.companies.EXPECT().GetListing(gomock.Any(), req.ListingID).Return(&company.Listing{Title: "Senior Go engineer"}, nil)
		tx.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().ConsumeDealCredit(gomock.Any(), req.ClientID).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		err := f.svc.ConfirmPayment(context.Background(), finalize.Confirmation{RequestID: req.ID, Discounted: true})
		require.NoError(t, err)
	})

	t.Run("RedeliveryIsNoOp", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()
		req.Status = request.StatusAccepted
		tx := finalize.NewMockConfirmTx(f.ctrl)

		f.repo.EXPECT().BeginConfirm(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
		tx.EXPECT().Rollback().Return(nil)

		err := f.svc.ConfirmPayment(context.Background(), finalize.Confirmation{RequestID: req.ID, Discounted: true})
		require.NoError(t, err)
	})

	t.Run("TransitionFailureRollsBack", func(t *testing.T) {
		f := newFixture(t)
		req := f.offerSentRequest()
		tx := finalize.NewMockConfirmTx(f.ctrl)

		f.repo.EXPECT().BeginConfirm(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
		tx.EXPECT().
			UpdateRequestStatus(gomock.Any(), req.ID, request.StatusOfferSent, request.StatusAccepted).
			Return(apperr.NewInvalidTransition("request", "offer_sent", "accepted"))
		tx.EXPECT().Rollback().Return(nil)

		err := f.svc.ConfirmPayment(context.Background(), finalize.Confirmation{RequestID: req.ID})
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}
