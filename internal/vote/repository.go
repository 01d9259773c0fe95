package vote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultQueryTimeout = 5 * time.Second

// Repository provides database access for votes.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert records the user's vote on a comment, replacing any prior status.
func (r *Repository) Upsert(ctx context.Context, userID, commentID uuid.UUID, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
INSERT INTO votes (user_id, comment_id, status)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, comment_id) DO UPDATE SET status = EXCLUDED.status;`

	if _, err := r.pool.Exec(ctx, query, userID, commentID, status); err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

// Delete removes the user's vote on a comment.
func (r *Repository) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM votes WHERE user_id = $1 AND comment_id = $2;`, userID, commentID)
	if err != nil {
		return fmt.Errorf("delete vote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVoteNotFound
	}
	return nil
}
