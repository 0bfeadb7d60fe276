package company

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	GetListing(ctx context.Context, id uuid.UUID) (*Listing, error)
	MemberIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return s.repo.GetCompany(ctx, id)
}

func (s *Service) GetListing(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.repo.GetListing(ctx, id)
}

// MemberIDs satisfies notify.Directory.
func (s *Service) MemberIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.MemberIDs(ctx, companyID)
}
