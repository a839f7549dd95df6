// Package shim implements the cale-thickness repository (table
// historique_cale). The table does not enforce uniqueness of the
// (assise, axe) pair; the shim registry in the dashboard service enforces
// check-then-insert at the application layer.
package shim

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
	"id", "reference_amortisseur", "assise_coupelle", "axe_coupelle",
	"epaisseur_cale", "nom_prenom", "user_id", "temps_activite",
}

// Repo provides cale-record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shim repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Find returns the first recorded cale for the (assise, axe) pair, or
// domain.ErrNotFound when none exists.
func (r *Repo) Find(ctx context.Context, assise, axe string) (*domain.ShimRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("historique_cale").
		Where(sq.Eq{"assise_coupelle": assise, "axe_coupelle": axe}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find cale: %w", err)
	}

	rec, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "historique_cale", assise+"/"+axe)
	}
	return &rec, nil
}

// Create inserts a cale record. It does not check for an existing pair;
// that is the caller's responsibility via Find.
func (r *Repo) Create(ctx context.Context, rec domain.ShimRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("historique_cale").
		Columns(columns...).
		Values(rec.ID, rec.AmortisseurRef, rec.Assise, rec.Axe,
			rec.ThicknessMm, rec.PersonName, rec.UserID, rec.RecordedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create cale: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "historique_cale", rec.Assise+"/"+rec.Axe)
	}
	return nil
}

// List returns cale records matching the filter, most recent first.
func (r *Repo) List(ctx context.Context, f domain.ShimFilter) ([]domain.ShimRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(columns...).From("historique_cale")
	if f.From != nil {
		query = query.Where(sq.GtOrEq{"temps_activite": *f.From})
	}
	if f.To != nil {
		query = query.Where(sq.LtOrEq{"temps_activite": *f.To})
	}
	if f.Assise != nil && *f.Assise != "" {
		query = query.Where(sq.ILike{"assise_coupelle": "%" + *f.Assise + "%"})
	}
	if f.Axe != nil && *f.Axe != "" {
		query = query.Where(sq.ILike{"axe_coupelle": "%" + *f.Axe + "%"})
	}

	sql, args, err := query.OrderBy("temps_activite DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cales: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "historique_cale", "list")
	}
	defer rows.Close()

	var out []domain.ShimRecord
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update rewrites an existing cale record (admin maintenance only).
func (r *Repo) Update(ctx context.Context, rec domain.ShimRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("historique_cale").
		Set("reference_amortisseur", rec.AmortisseurRef).
		Set("assise_coupelle", rec.Assise).
		Set("axe_coupelle", rec.Axe).
		Set("epaisseur_cale", rec.ThicknessMm).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update cale: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "historique_cale", rec.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("historique_cale %s: %w", rec.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a cale record by id (admin maintenance only).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("historique_cale").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete cale: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "historique_cale", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("historique_cale %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (domain.ShimRecord, error) {
	var rec domain.ShimRecord
	err := row.Scan(&rec.ID, &rec.AmortisseurRef, &rec.Assise, &rec.Axe,
		&rec.ThicknessMm, &rec.PersonName, &rec.UserID, &rec.RecordedAt)
	if err != nil {
		return domain.ShimRecord{}, err
	}
	return rec, nil
}
