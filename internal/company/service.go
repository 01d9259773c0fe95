package company

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

type repository interface {
	Create(ctx context.Context, input CreateInput, userID uuid.UUID) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, id uuid.UUID) (Company, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service orchestrates company operations.
type Service struct {
	repo repository
}

// NewService constructs a company service.
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries data for a company submission.
type CreateInput struct {
	Name                string
	Description         string
	Country             string
	Website             string
	Linkedin            *string
	SupportsSponsorship SponsorshipSupport
}

// UpdateInput carries a partial company update; nil fields are left unchanged.
type UpdateInput struct {
	Name                *string
	Description         *string
	Country             *string
	Website             *string
	Linkedin            *string
	SupportsSponsorship *SponsorshipSupport
}

// Create submits a new company. Only verified users may submit.
func (s *Service) Create(ctx context.Context, input CreateInput, principal auth.Principal) (Company, error) {
	if !principal.IsVerified {
		return Company{}, auth.ErrNotVerified
	}

	input.Country = strings.ToUpper(input.Country)
	return s.repo.Create(ctx, input, principal.ID)
}

// List returns all companies.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

// Get returns a single company.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Company, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update to a company.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	if input.Country != nil {
		upper := strings.ToUpper(*input.Country)
		input.Country = &upper
	}
	return s.repo.Update(ctx, id, input)
}

// Delete removes a company.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
