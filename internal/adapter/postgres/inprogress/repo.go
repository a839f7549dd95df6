// Package inprogress implements the outils_en_cours repository: tools
// currently checked out of the workshop.
package inprogress

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres"
	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "reference", "reference_outil", "emplacement",
	"nom_prenom_personne", "activite", "quantite", "created_by", "date_operation",
}

// Repo provides outils_en_cours persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new in-progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Exists reports whether the tool (reference, toolRef) is currently checked
// out. Existence of a row is the sole "not available" signal.
func (r *Repo) Exists(ctx context.Context, reference, toolRef string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("1").
		From("outils_en_cours").
		Where(sq.Eq{"reference": reference, "reference_outil": toolRef}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build in-progress exists: %w", err)
	}

	var one int
	err = q.QueryRow(ctx, sql, args...).Scan(&one)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return false, postgres.MapError(err, "outils_en_cours", reference+"/"+toolRef)
}

// Create inserts a new in-progress record.
func (r *Repo) Create(ctx context.Context, rec domain.InProgressTool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("outils_en_cours").
		Columns(columns...).
		Values(rec.ID, rec.Reference, rec.ToolRef, rec.Location,
			rec.PersonName, rec.Activity, rec.Quantity, rec.CreatedBy, rec.OperationAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create in-progress: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "outils_en_cours", rec.ToolRef)
	}
	return nil
}

// GetByID fetches one in-progress record.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InProgressTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("outils_en_cours").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build in-progress by id: %w", err)
	}

	rec, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "outils_en_cours", id.String())
	}
	return &rec, nil
}

// Delete removes an in-progress record by id (the check-in transition).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("outils_en_cours").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete in-progress: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "outils_en_cours", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outils_en_cours %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns every in-progress record, most recent operation first.
func (r *Repo) List(ctx context.Context) ([]domain.InProgressTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("outils_en_cours").
		OrderBy("date_operation DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list in-progress: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "outils_en_cours", "list")
	}
	defer rows.Close()

	var out []domain.InProgressTool
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (domain.InProgressTool, error) {
	var rec domain.InProgressTool
	err := row.Scan(&rec.ID, &rec.Reference, &rec.ToolRef, &rec.Location,
		&rec.PersonName, &rec.Activity, &rec.Quantity, &rec.CreatedBy, &rec.OperationAt)
	if err != nil {
		return domain.InProgressTool{}, err
	}
	return rec, nil
}
