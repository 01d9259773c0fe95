package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultQueryTimeout = 5 * time.Second

// Repository provides database access for users and verification codes.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateUser persists a new unverified user with the default role.
func (r *Repository) CreateUser(ctx context.Context, name, email, passwordHash string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, password_hash, role, is_verified, refresh_token_hash, created_at;`

	row := r.pool.QueryRow(ctx, query, name, email, passwordHash)

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUserAlreadyExists
		}
		return User{}, fmt.Errorf("scan user: %w", err)
	}

	return user, nil
}

// FindUserByEmail fetches a user by email.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
SELECT id, name, email, password_hash, role, is_verified, refresh_token_hash, created_at
FROM users
WHERE email = $1;`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("find user by email: %w", err)
	}

	return user, nil
}

// FindUserByID fetches a user by id.
func (r *Repository) FindUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
SELECT id, name, email, password_hash, role, is_verified, refresh_token_hash, created_at
FROM users
WHERE id = $1;`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("find user by id: %w", err)
	}

	return user, nil
}

// UpdateRefreshTokenHash overwrites the stored refresh token hash; nil
// revokes the active refresh session.
func (r *Repository) UpdateRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `UPDATE users SET refresh_token_hash = $2 WHERE id = $1;`

	tag, err := r.pool.Exec(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("update refresh token hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindVerificationByUserID fetches the pending verification for a user.
func (r *Repository) FindVerificationByUserID(ctx context.Context, userID uuid.UUID) (Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `SELECT id, user_id, code, expires_at FROM verifications WHERE user_id = $1;`

	return r.scanVerification(r.pool.QueryRow(ctx, query, userID))
}

// FindVerificationByUserAndCode fetches a verification matching user and code.
func (r *Repository) FindVerificationByUserAndCode(ctx context.Context, userID uuid.UUID, code string) (Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `SELECT id, user_id, code, expires_at FROM verifications WHERE user_id = $1 AND code = $2;`

	return r.scanVerification(r.pool.QueryRow(ctx, query, userID, code))
}

// CreateVerification inserts a pending verification. The unique constraint
// on user_id turns a concurrent duplicate into ErrVerificationExists.
func (r *Repository) CreateVerification(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `INSERT INTO verifications (user_id, code, expires_at) VALUES ($1, $2, $3);`

	if _, err := r.pool.Exec(ctx, query, userID, code, expiresAt); err != nil {
		if isUniqueViolation(err) {
			return ErrVerificationExists
		}
		return fmt.Errorf("create verification: %w", err)
	}
	return nil
}

// DeleteVerification removes a verification row.
func (r *Repository) DeleteVerification(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	if _, err := r.pool.Exec(ctx, `DELETE FROM verifications WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete verification: %w", err)
	}
	return nil
}

// ConsumeVerification marks the user verified and deletes the verification
// record in a single transaction; neither effect happens without the other.
func (r *Repository) ConsumeVerification(ctx context.Context, userID, verificationID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin consume verification: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE users SET is_verified = TRUE WHERE id = $1;`, userID); err != nil {
		return fmt.Errorf("mark user verified: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM verifications WHERE id = $1;`, verificationID); err != nil {
		return fmt.Errorf("delete consumed verification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit consume verification: %w", err)
	}
	return nil
}

func (r *Repository) scanVerification(row pgx.Row) (Verification, error) {
	var v Verification
	if err := row.Scan(&v.ID, &v.UserID, &v.Code, &v.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Verification{}, ErrVerificationNotFound
		}
		return Verification{}, fmt.Errorf("scan verification: %w", err)
	}
	return v, nil
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsVerified,
		&user.RefreshTokenHash,
		&user.CreatedAt,
	)
	return user, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
