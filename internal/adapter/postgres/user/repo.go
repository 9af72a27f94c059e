// Package user implements identity persistence.
package user

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wordmemo/wordmemo-backend/internal/adapter/postgres"
	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = "id, username, email, password_hash, created_at, updated_at"

const createUserSQL = `
INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + userColumns

// Create inserts a new user. Returns domain.ErrAlreadyExists when the
// username or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.User
	err := pgxscan.Get(ctx, q, &created, createUserSQL, u.ID, u.Username, u.Email, u.PasswordHash)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return &created, nil
}

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetByID returns a user by ID, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return &u, nil
}

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

// GetByUsername returns a user by username, or domain.ErrNotFound.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, getByUsernameSQL, username); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return &u, nil
}

const ensureAggregateSQL = `
INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, NULL, now(), now())
ON CONFLICT (username) DO NOTHING`

// GetOrCreateAggregate returns the system identity with the given username,
// creating it without a password hash if it does not exist yet. The upsert
// makes concurrent startups converge on a single row.
func (r *Repo) GetOrCreateAggregate(ctx context.Context, username, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureAggregateSQL, uuid.New(), username, email); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return r.GetByUsername(ctx, username)
}
