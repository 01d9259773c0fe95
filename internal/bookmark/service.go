package bookmark

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

type repository interface {
	Create(ctx context.Context, userID, companyID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// companyIndex checks company existence without importing the company package.
type companyIndex interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service orchestrates bookmark operations.
type Service struct {
	repo      repository
	companies companyIndex
}

// NewService constructs a bookmark service.
func NewService(repo repository, companies companyIndex) *Service {
	return &Service{repo: repo, companies: companies}
}

// Create bookmarks a company for the principal. Bookmarking an already
// bookmarked company succeeds without creating a duplicate.
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, principal auth.Principal) error {
	exists, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return ErrCompanyNotFound
	}

	return s.repo.Create(ctx, principal.ID, companyID)
}

// List returns the principal's bookmarks.
func (s *Service) List(ctx context.Context, principal auth.Principal) ([]Bookmark, error) {
	return s.repo.ListByUser(ctx, principal.ID)
}

// Delete removes one of the principal's bookmarks.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, principal auth.Principal) error {
	return s.repo.Delete(ctx, id, principal.ID)
}
