package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

type repository interface {
	Create(ctx context.Context, message string, userID, companyID uuid.UUID, parentID *uuid.UUID) (Comment, error)
	Get(ctx context.Context, id uuid.UUID) (Comment, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Comment, error)
	Update(ctx context.Context, id uuid.UUID, message string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// companyIndex checks company existence without importing the company package.
type companyIndex interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service orchestrates comment operations.
type Service struct {
	repo      repository
	companies companyIndex
}

// NewService constructs a comment service.
func NewService(repo repository, companies companyIndex) *Service {
	return &Service{repo: repo, companies: companies}
}

// CreateInput carries data for a new comment.
type CreateInput struct {
	CompanyID uuid.UUID
	Message   string
	ParentID  *uuid.UUID
}

// Create posts a comment on a company. The company must exist, as must the
// parent comment when replying. Only verified users may comment.
func (s *Service) Create(ctx context.Context, input CreateInput, principal auth.Principal) (Comment, error) {
	if !principal.IsVerified {
		return Comment{}, auth.ErrNotVerified
	}

	exists, err := s.companies.Exists(ctx, input.CompanyID)
	if err != nil {
		return Comment{}, fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return Comment{}, ErrCompanyNotFound
	}

	if input.ParentID != nil {
		parentExists, err := s.repo.Exists(ctx, *input.ParentID)
		if err != nil {
			return Comment{}, fmt.Errorf("check parent comment: %w", err)
		}
		if !parentExists {
			return Comment{}, ErrCommentNotFound
		}
	}

	return s.repo.Create(ctx, input.Message, principal.ID, input.CompanyID, input.ParentID)
}

// ListByCompany returns a company's comments.
func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Comment, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// Update edits a comment's message. Authors may edit their own comments;
// admins may edit any.
func (s *Service) Update(ctx context.Context, id uuid.UUID, message string, principal auth.Principal) error {
	comment, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if comment.UserID != principal.ID && principal.Role != auth.RoleAdmin {
		return auth.ErrForbidden
	}

	return s.repo.Update(ctx, id, message)
}

// Delete removes a comment.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
