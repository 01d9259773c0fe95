package vote

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

type repository interface {
	Upsert(ctx context.Context, userID, commentID uuid.UUID, status Status) error
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}

// commentIndex checks comment existence without importing the comment package.
type commentIndex interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service orchestrates vote operations.
type Service struct {
	repo     repository
	comments commentIndex
}

// NewService constructs a vote service.
func NewService(repo repository, comments commentIndex) *Service {
	return &Service{repo: repo, comments: comments}
}

// Cast records the principal's vote on a comment, replacing any prior vote.
// Only verified users may vote.
func (s *Service) Cast(ctx context.Context, commentID uuid.UUID, status Status, principal auth.Principal) error {
	if !principal.IsVerified {
		return auth.ErrNotVerified
	}

	exists, err := s.comments.Exists(ctx, commentID)
	if err != nil {
		return fmt.Errorf("check comment: %w", err)
	}
	if !exists {
		return ErrCommentNotFound
	}

	return s.repo.Upsert(ctx, principal.ID, commentID, status)
}

// Remove withdraws the principal's vote from a comment.
func (s *Service) Remove(ctx context.Context, commentID uuid.UUID, principal auth.Principal) error {
	return s.repo.Delete(ctx, principal.ID, commentID)
}
