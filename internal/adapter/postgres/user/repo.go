// Package user implements account persistence for authentication and
// admin user management.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres"
	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "username", "display_name", "password_hash", "role", "created_at",
}

// Repo provides user account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByUsername returns the account with the given username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"username": username}, username)
}

// GetByID returns the account with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"id": id}, id.String())
}

// List returns all accounts ordered by username.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("users").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "users", "list")
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Create inserts a new account. A duplicate username surfaces as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("users").
		Columns(columns...).
		Values(u.ID, u.Username, u.DisplayName, u.PasswordHash, u.Role, u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "users", u.Username)
	}
	return nil
}

// UpdatePassword replaces an account's password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("users").
		Set("password_hash", hash).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update password: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "users", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("users %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an account by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "users", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("users %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getWhere(ctx context.Context, pred sq.Eq, key string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	u, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "users", key)
	}
	return &u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.PasswordHash,
		&u.Role, &u.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}
