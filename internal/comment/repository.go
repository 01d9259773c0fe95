package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultQueryTimeout = 5 * time.Second

const commentColumns = `id, message, user_id, company_id, parent_id, created_at, updated_at`

// Repository provides database access for comments.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create persists a new comment.
func (r *Repository) Create(ctx context.Context, message string, userID, companyID uuid.UUID, parentID *uuid.UUID) (Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
INSERT INTO comments (message, user_id, company_id, parent_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + commentColumns + `;`

	comment, err := scanComment(r.pool.QueryRow(ctx, query, message, userID, companyID, parentID))
	if err != nil {
		return Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// Get fetches a comment by id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1;`

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, ErrCommentNotFound
		}
		return Comment{}, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

// ListByCompany returns a company's comments, oldest first.
func (r *Repository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `SELECT ` + commentColumns + ` FROM comments WHERE company_id = $1 ORDER BY created_at;`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Update replaces a comment's message.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, message string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `UPDATE comments SET message = $2, updated_at = NOW() WHERE id = $1;`

	tag, err := r.pool.Exec(ctx, query, id, message)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Exists reports whether a comment with the id exists.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("comment exists: %w", err)
	}
	return exists, nil
}

func scanComment(row pgx.Row) (Comment, error) {
	var c Comment
	err := row.Scan(
		&c.ID,
		&c.Message,
		&c.UserID,
		&c.CompanyID,
		&c.ParentID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
