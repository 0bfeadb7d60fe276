// Package finalize bridges an offer-stage request to contractual
// commitment through the external payment provider. A successful payment
// confirmation turns into one atomic transition-plus-contract write.
package finalize

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/company"
	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/money"
	"github.com/benchlane/benchlane/internal/notify"
	"github.com/benchlane/benchlane/internal/payment"
	"github.com/benchlane/benchlane/internal/request"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finalize
type Repository interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*request.Request, error)

	// BeginConfirm opens the transaction that consumes one payment
	// confirmation.
	BeginConfirm(ctx context.Context) (ConfirmTx, error)
}

// ConfirmTx is the transactional scope of one payment confirmation.
type ConfirmTx interface {
	// GetRequestForUpdate loads the request with a row lock so
	// concurrent webhook deliveries serialize on it.
	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*request.Request, error)

	UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to request.Status) error
	CreateContract(ctx context.Context, c *contract.Contract) error

	// ConsumeDealCredit decrements one founding-member credit when one
	// remains. Running out between checkout and confirmation is not an
	// error.
	ConsumeDealCredit(ctx context.Context, companyID uuid.UUID) error

	Commit() error
	Rollback() error
}

// CompanyDirectory resolves the paying company for fee quoting.
type CompanyDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*company.Company, error)
	GetListing(ctx context.Context, id uuid.UUID) (*company.Listing, error)
}

// Notifier delivers best-effort notifications to a company's users.
type Notifier interface {
	NotifyCompany(ctx context.Context, companyID uuid.UUID, n notify.Notification)
}

// FeeSchedule holds the finalization fees in cents.
type FeeSchedule struct {
	StandardCents   int64
	DiscountedCents int64
}

type Service struct {
	repo      Repository
	companies CompanyDirectory
	provider  payment.Provider
	notifier  Notifier
	fees      FeeSchedule
}

func NewService(repo Repository, companies CompanyDirectory, provider payment.Provider, notifier Notifier, fees FeeSchedule) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		provider:  provider,
		notifier:  notifier,
		fees:      fees,
	}
}

// CheckoutSession is the hosted payment session handed back to the
// client, with the quoted fee.
type CheckoutSession struct {
	URL         string
	AmountCents int64
	Discounted  bool
}

// StartCheckout quotes the finalization fee and opens a hosted checkout
// for it. Only the client side may pay, and only while the offer stands.
// No credit is consumed here; an abandoned checkout must cost nothing.
func (s *Service) StartCheckout(ctx context.Context, acting identity.ActingCompany, requestID uuid.UUID) (*CheckoutSession, error) {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	role, ok := req.RoleOf(acting.CompanyID)
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if role != request.RoleClient {
		return nil, apperr.ErrUnauthorized
	}

	if req.Status != request.StatusOfferSent {
		return nil, apperr.NewInvalidTransition("request", string(req.Status), string(request.StatusAccepted))
	}

	payer, err := s.companies.Get(ctx, acting.CompanyID)
	if err != nil {
		return nil, err
	}

	amount := s.fees.StandardCents
	discounted := payer.HasDealCredit()

	if discounted {
		amount = s.fees.DiscountedCents
	}

	checkout, err := s.provider.CreateCheckout(ctx, payment.CheckoutParams{
		AmountCents: amount,
		Currency:    "eur",
		Description: fmt.Sprintf("Finalization fee for engagement request %s", requestID),
		Metadata: map[string]string{
			"request_id": requestID.String(),
			"discounted": fmt.Sprintf("%t", discounted),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating checkout: %w: %v", apperr.ErrExternalService, err)
	}

	return &CheckoutSession{
		URL:         checkout.URL,
		AmountCents: amount,
		Discounted:  discounted,
	}, nil
}

// Confirmation is one payment-success event from the provider webhook.
type Confirmation struct {
	RequestID  uuid.UUID
	Discounted bool
}

// ConfirmPayment consumes a payment confirmation: the request moves to
// accepted, a draft contract is created from the offer terms, and a deal
// credit is burned when a discounted fee was paid. Redelivery of the same
// confirmation is a no-op, never a second contract.
func (s *Service) ConfirmPayment(ctx context.Context, conf Confirmation) error {
	tx, err := s.repo.BeginConfirm(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	req, err := tx.GetRequestForUpdate(ctx, conf.RequestID)
	if err != nil {
		return err
	}

	// The request already moved past the offer stage: a webhook retry.
	if req.Status != request.StatusOfferSent {
		return nil
	}

	if !req.HasOffer() {
		return apperr.NewValidation("request", "has no offer to finalize")
	}

	if err := tx.UpdateRequestStatus(ctx, req.ID, request.StatusOfferSent, request.StatusAccepted); err != nil {
		return err
	}

	c := s.contractFromOffer(ctx, req)
	if err := tx.CreateContract(ctx, c); err != nil {
		return err
	}

	if conf.Discounted {
		if err := tx.ConsumeDealCredit(ctx, req.ClientID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	n := notify.Notification{
		Title:   "Engagement finalized",
		Message: fmt.Sprintf("The offer at %s/h was paid; a draft contract awaits agreement from both sides.", money.FormatEUR(*req.OfferedRateCents)),
		Link:    "/contracts/" + c.ID.String(),
	}

	s.notifier.NotifyCompany(ctx, req.ClientID, n)
	s.notifier.NotifyCompany(ctx, req.VendorID, n)

	return nil
}

func (s *Service) contractFromOffer(ctx context.Context, req *request.Request) *contract.Contract {
	title := fmt.Sprintf("Engagement %s", req.ID)
	if listing, err := s.companies.GetListing(ctx, req.ListingID); err == nil {
		title = listing.Title
	}

	var terms string
	if req.OfferNotes != nil {
		terms = *req.OfferNotes
	}

	return &contract.Contract{
		RequestID:       req.ID,
		ClientID:        req.ClientID,
		VendorID:        req.VendorID,
		Title:           title,
		Terms:           terms,
		HourlyRateCents: *req.OfferedRateCents,
		StartDate:       *req.OfferedStartDate,
		EndDate:         *req.OfferedEndDate,
		Status:          contract.StatusDraft,
	}
}
