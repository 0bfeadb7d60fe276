package request_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/company"
	"github.com/benchlane/benchlane/internal/conversation"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/request"
)

type fixture struct {
	repo     *request.MockRepository
	listings *request.MockListingDirectory
	threads  *request.MockThreadOpener
	notifier *request.MockNotifier
	svc      *request.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     request.NewMockRepository(ctrl),
		listings: request.NewMockListingDirectory(ctrl),
		threads:  request.NewMockThreadOpener(ctrl),
		notifier: request.NewMockNotifier(ctrl),
	}
	f.notifier.EXPECT().NotifyCompany(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.svc = request.NewService(f.repo, f.listings, f.threads, f.notifier)

	return f
}

func acting() identity.ActingCompany {
	return identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}
}

func pendingRequest(clientID, vendorID uuid.UUID) *request.Request {
	return &request.Request{
		ID:              uuid.New(),
		ClientID:        clientID,
		VendorID:        vendorID,
		ListingID:       uuid.New(),
		Status:          request.StatusPending,
		AgreedRateCents: 5000,
		StartDate:       time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create(t *testing.T) {
	client := acting()
	vendorID := uuid.New()
	listingID := uuid.New()

	listing := &company.Listing{
		ID:              listingID,
		CompanyID:       vendorID,
		Title:           "Senior Go developer",
		HourlyRateCents: 5000,
		Active:          true,
	}

	params := request.CreateParams{
		ListingID: listingID,
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Message:   "We need two backend developers for Q2.",
	}

	type testCase struct {
		name      string
		params    request.CreateParams
		setupMock func(f *fixture)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: params,
			setupMock: func(f *fixture) {
				f.listings.EXPECT().GetListing(gomock.Any(), listingID).Return(listing, nil)
				f.repo.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *request.Request) error {
						r.ID = uuid.New()
						r.CreatedAt = time.Now()
						return nil
					})
				f.threads.EXPECT().
					Open(gomock.Any(), gomock.Any(), client.UserID, params.Message).
					Return(&conversation.Thread{ID: uuid.New()}, nil)
			},
		},
		{
			name: "MessageTooShort",
			params: request.CreateParams{
				ListingID: listingID,
				StartDate: params.StartDate,
				EndDate:   params.EndDate,
				Message:   "hi",
			},
			wantErr: apperr.ErrValidation,
		},
		{
			name: "EndBeforeStart",
			params: request.CreateParams{
				ListingID: listingID,
				StartDate: params.EndDate,
				EndDate:   params.StartDate,
				Message:   params.Message,
			},
			wantErr: apperr.ErrValidation,
		},
		{
			name:   "InactiveListing",
			params: params,
			setupMock: func(f *fixture) {
				inactive := *listing
				inactive.Active = false
				f.listings.EXPECT().GetListing(gomock.Any(), listingID).Return(&inactive, nil)
			},
			wantErr: apperr.ErrValidation,
		},
		{
			name:   "OwnListing",
			params: params,
			setupMock: func(f *fixture) {
				own := *listing
				own.CompanyID = client.CompanyID
				f.listings.EXPECT().GetListing(gomock.Any(), listingID).Return(&own, nil)
			},
			wantErr: apperr.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			got, err := f.svc.Create(context.Background(), client, tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, request.StatusPending, got.Status)
			assert.Equal(t, client.CompanyID, got.ClientID)
			assert.Equal(t, vendorID, got.VendorID)
			assert.Equal(t, int64(5000), got.AgreedRateCents)
		})
	}
}

func TestService_SendOffer(t *testing.T) {
	vendor := acting()
	clientID := uuid.New()

	params := request.OfferParams{
		RateCents: 6000,
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Notes:     "Rate includes onboarding week.",
	}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(clientID, vendor.CompanyID)

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().
			SetOffer(gomock.Any(), r.ID, request.StatusPending, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ request.Status, offer request.Offer) error {
				assert.Equal(t, int64(6000), offer.RateCents)
				assert.False(t, offer.SentAt.IsZero())
				return nil
			})

		got, err := f.svc.SendOffer(context.Background(), vendor, r.ID, params)
		require.NoError(t, err)
		assert.Equal(t, request.StatusOfferSent, got.Status)
		require.NotNil(t, got.OfferedRateCents)
		assert.Equal(t, int64(6000), *got.OfferedRateCents)
		assert.NotNil(t, got.OfferSentAt)
	})

	t.Run("ClientCannotSend", func(t *testing.T) {
		f := newFixture(t)
		client := identity.ActingCompany{UserID: uuid.New(), CompanyID: clientID}
		r := pendingRequest(clientID, vendor.CompanyID)

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.SendOffer(context.Background(), client, r.ID, params)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("NonPositiveRate", func(t *testing.T) {
		f := newFixture(t)

		bad := params
		bad.RateCents = 0

		_, err := f.svc.SendOffer(context.Background(), vendor, uuid.New(), bad)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("AlreadyAccepted", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(clientID, vendor.CompanyID)
		r.Status = request.StatusAccepted

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.SendOffer(context.Background(), vendor, r.ID, params)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("Outsider", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(clientID, vendor.CompanyID)

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.SendOffer(context.Background(), acting(), r.ID, params)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_ReviseOffer(t *testing.T) {
	vendor := acting()
	clientID := uuid.New()

	t.Run("ClearsOfferAndReturnsToNegotiating", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(clientID, vendor.CompanyID)
		r.Status = request.StatusOfferSent

		rate := int64(6000)
		sentAt := time.Now()
		notes := "notes"
		r.OfferedRateCents = &rate
		r.OfferedStartDate = &r.StartDate
		r.OfferedEndDate = &r.EndDate
		r.OfferNotes = &notes
		r.OfferSentAt = &sentAt

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().ClearOffer(gomock.Any(), r.ID).Return(nil)

		got, err := f.svc.ReviseOffer(context.Background(), vendor, r.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusNegotiating, got.Status)
		assert.Nil(t, got.OfferedRateCents)
		assert.Nil(t, got.OfferedStartDate)
		assert.Nil(t, got.OfferedEndDate)
		assert.Nil(t, got.OfferNotes)
		assert.Nil(t, got.OfferSentAt)
	})

	t.Run("NoOfferToWithdraw", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(clientID, vendor.CompanyID)
		r.Status = request.StatusNegotiating

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.ReviseOffer(context.Background(), vendor, r.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}

func TestService_Cancel(t *testing.T) {
	vendor := acting()
	client := acting()

	t.Run("ClientCancelsPending", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(client.CompanyID, vendor.CompanyID)

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), r.ID, request.StatusPending, request.StatusCancelled).Return(nil)

		got, err := f.svc.Cancel(context.Background(), client, r.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusCancelled, got.Status)
	})

	t.Run("VendorCannotCancelPending", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(client.CompanyID, vendor.CompanyID)

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.Cancel(context.Background(), vendor, r.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("EitherCancelsInProgress", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(client.CompanyID, vendor.CompanyID)
		r.Status = request.StatusInProgress

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), r.ID, request.StatusInProgress, request.StatusCancelled).Return(nil)

		got, err := f.svc.Cancel(context.Background(), vendor, r.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusCancelled, got.Status)
	})
}

func TestService_Accept(t *testing.T) {
	vendor := acting()
	client := acting()

	t.Run("VendorAcceptsPending", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(client.CompanyID, vendor.CompanyID)

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), r.ID, request.StatusPending, request.StatusAccepted).Return(nil)

		got, err := f.svc.Accept(context.Background(), vendor, r.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusAccepted, got.Status)
	})

	// A standing offer is settled through the finalization fee only; the
	// free accept operation must never move it. No UpdateStatus call is
	// expected here.
	t.Run("ClientCannotBypassPaymentOnOffer", func(t *testing.T) {
		f := newFixture(t)
		r := pendingRequest(client.CompanyID, vendor.CompanyID)
		r.Status = request.StatusOfferSent

		f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.Accept(context.Background(), client, r.ID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})
}

func TestService_Get_HidesFromOutsiders(t *testing.T) {
	f := newFixture(t)
	r := pendingRequest(uuid.New(), uuid.New())

	f.repo.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	_, err := f.svc.Get(context.Background(), acting(), r.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
