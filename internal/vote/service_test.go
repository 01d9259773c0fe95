package vote

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
)

type voteKey struct {
	userID    uuid.UUID
	commentID uuid.UUID
}

type memoryRepo struct {
	votes map[voteKey]Status
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{votes: make(map[voteKey]Status)}
}

func (m *memoryRepo) Upsert(ctx context.Context, userID, commentID uuid.UUID, status Status) error {
	m.votes[voteKey{userID, commentID}] = status
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	key := voteKey{userID, commentID}
	if _, ok := m.votes[key]; !ok {
		return ErrVoteNotFound
	}
	delete(m.votes, key)
	return nil
}

type staticCommentIndex map[uuid.UUID]bool

func (s staticCommentIndex) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s[id], nil
}

func verifiedPrincipal() auth.Principal {
	return auth.Principal{ID: uuid.New(), Role: auth.RoleUser, IsVerified: true}
}

func TestCastReplacesPriorVote(t *testing.T) {
	commentID := uuid.New()
	repo := newMemoryRepo()
	service := NewService(repo, staticCommentIndex{commentID: true})
	principal := verifiedPrincipal()

	if err := service.Cast(context.Background(), commentID, StatusUp, principal); err != nil {
		t.Fatalf("cast vote: %v", err)
	}
	if err := service.Cast(context.Background(), commentID, StatusDown, principal); err != nil {
		t.Fatalf("recast vote: %v", err)
	}

	if len(repo.votes) != 1 {
		t.Fatalf("expected a single vote per user and comment, got %d", len(repo.votes))
	}
	if got := repo.votes[voteKey{principal.ID, commentID}]; got != StatusDown {
		t.Fatalf("expected the latest status to win, got %q", got)
	}
}

func TestCastUnknownComment(t *testing.T) {
	service := NewService(newMemoryRepo(), staticCommentIndex{})

	err := service.Cast(context.Background(), uuid.New(), StatusUp, verifiedPrincipal())
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCastRequiresVerifiedUser(t *testing.T) {
	commentID := uuid.New()
	service := NewService(newMemoryRepo(), staticCommentIndex{commentID: true})

	principal := verifiedPrincipal()
	principal.IsVerified = false

	err := service.Cast(context.Background(), commentID, StatusUp, principal)
	if !errors.Is(err, auth.ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified, got %v", err)
	}
}

func TestRemoveVote(t *testing.T) {
	commentID := uuid.New()
	repo := newMemoryRepo()
	service := NewService(repo, staticCommentIndex{commentID: true})
	principal := verifiedPrincipal()

	if err := service.Cast(context.Background(), commentID, StatusUp, principal); err != nil {
		t.Fatalf("cast vote: %v", err)
	}
	if err := service.Remove(context.Background(), commentID, principal); err != nil {
		t.Fatalf("remove vote: %v", err)
	}

	// removing again surfaces the missing vote
	if err := service.Remove(context.Background(), commentID, principal); !errors.Is(err, ErrVoteNotFound) {
		t.Fatalf("expected ErrVoteNotFound, got %v", err)
	}
}
