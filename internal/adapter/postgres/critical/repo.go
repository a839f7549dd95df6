// Package critical implements persistence for the outil_critique table,
// the registry of tool references that require a cleaning acknowledgement
// before check-out.
package critical

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
	"id", "reference", "reference_composant", "reference_outil", "emplacement", "created_at",
}

// Repo provides critical-tool persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new critical-tool repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindByToolRefs returns the critical entries whose reference_outil is in
// refs. An empty refs slice returns no rows without hitting the database.
func (r *Repo) FindByToolRefs(ctx context.Context, refs []string) ([]domain.CriticalTool, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("outil_critique").
		Where(sq.Eq{"reference_outil": refs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find critical: %w", err)
	}

	return r.query(ctx, q, sql, args)
}

// List returns all critical entries, most recent first.
func (r *Repo) List(ctx context.Context) ([]domain.CriticalTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("outil_critique").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list critical: %w", err)
	}

	return r.query(ctx, q, sql, args)
}

// Create registers a tool reference as critical.
func (r *Repo) Create(ctx context.Context, tool domain.CriticalTool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("outil_critique").
		Columns(columns...).
		Values(tool.ID, tool.Reference, tool.ComposantRef, tool.ToolRef,
			tool.Location, tool.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create critical: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "outil_critique", tool.ToolRef)
	}
	return nil
}

// Delete removes a critical entry by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("outil_critique").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete critical: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "outil_critique", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outil_critique %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) query(ctx context.Context, q postgres.Querier, sql string, args []any) ([]domain.CriticalTool, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "outil_critique", "list")
	}
	defer rows.Close()

	var out []domain.CriticalTool
	for rows.Next() {
		var t domain.CriticalTool
		err := rows.Scan(&t.ID, &t.Reference, &t.ComposantRef, &t.ToolRef,
			&t.Location, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
