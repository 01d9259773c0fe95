package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultQueryTimeout = 5 * time.Second

// Repository provides database access for bookmarks.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create saves a bookmark; bookmarking the same company twice is a no-op.
func (r *Repository) Create(ctx context.Context, userID, companyID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
INSERT INTO bookmarks (user_id, company_id)
VALUES ($1, $2)
ON CONFLICT (user_id, company_id) DO NOTHING;`

	if _, err := r.pool.Exec(ctx, query, userID, companyID); err != nil {
		return fmt.Errorf("create bookmark: %w", err)
	}
	return nil
}

// ListByUser returns the user's bookmarks, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
SELECT id, user_id, company_id, created_at
FROM bookmarks
WHERE user_id = $1
ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []Bookmark{}
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.CompanyID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Delete removes the user's bookmark by id. Ownership is enforced by the
// user_id predicate.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM bookmarks WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
