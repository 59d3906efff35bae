// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wholestock/inventory-backend/internal/adapter/postgres"
	"github.com/wholestock/inventory-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, password_hash, role, is_active, created_at`

const createUserSQL = `
INSERT INTO users (id, username, email, password_hash, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING ` + userColumns

const getUserByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getUserByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

const getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists when the username or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUserSQL,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role.String(), u.IsActive,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	u.Role = domain.UserRole(role)
	if !u.Role.IsValid() {
		return nil, fmt.Errorf("user %s: unknown role %q", u.ID, role)
	}

	return &u, nil
}
