package company

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

const companyColumns = `id, name, description, country, website, linkedin, supports_sponsorship, user_id, created_at, updated_at`

// Repository provides database access for companies.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create persists a new company submitted by the user.
func (r *Repository) Create(ctx context.Context, input CreateInput, userID uuid.UUID) (Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
INSERT INTO companies (name, description, country, website, linkedin, supports_sponsorship, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + companyColumns + `;`

	row := r.pool.QueryRow(ctx, query,
		input.Name, input.Description, input.Country, input.Website,
		input.Linkedin, input.SupportsSponsorship, userID)

	company, err := scanCompany(row)
	if err != nil {
		return Company{}, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// List returns all companies, newest first.
func (r *Repository) List(ctx context.Context) ([]Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := []Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

// Get fetches a company by id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1;`

	company, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
UPDATE companies
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    country = COALESCE($4, country),
    website = COALESCE($5, website),
    linkedin = COALESCE($6, linkedin),
    supports_sponsorship = COALESCE($7, supports_sponsorship),
    updated_at = NOW()
WHERE id = $1;`

	tag, err := r.pool.Exec(ctx, query, id,
		input.Name, input.Description, input.Country, input.Website,
		input.Linkedin, input.SupportsSponsorship)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Exists reports whether a company with the id exists.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("company exists: %w", err)
	}
	return exists, nil
}

func scanCompany(row pgx.Row) (Company, error) {
	var c Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Country,
		&c.Website,
		&c.Linkedin,
		&c.SupportsSponsorship,
		&c.UserID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
