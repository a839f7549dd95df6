// Package catalog implements the tool-catalog repository using PostgreSQL.
// It covers both catalog tables: outils_soudage_patte and
// outils_soudage_coupelle.
package catalog

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

var patteColumns = []string{
	"id", "reference_patte_anneau", "reference",
	"reference_outil_1", "emplacement_outil_1",
	"reference_outil_2", "emplacement_outil_2",
	"reference_outil_3", "emplacement_outil_3",
	"commentaire", "observation", "created_at",
}

var coupelleColumns = []string{
	"id", "reference_amortisseur", "reference_coupelle",
	"assise_coupelle_1", "emp_ass_1", "axe_coupelle_1", "emp_axe_1", "remarque_outil_1",
	"assise_coupelle_2", "emp_ass_2", "axe_coupelle_2", "emp_axe_2", "remarque_outil_2",
	"assise_coupelle_3", "emp_ass_3", "axe_coupelle_3", "emp_axe_3", "remarque_outil_3",
	"created_at",
}

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

// SearchPattes returns patte entries whose reference contains term
// (case-insensitive), ordered by reference.
func (r *Repo) SearchPattes(ctx context.Context, term string) ([]domain.PatteTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(patteColumns...).
		From("outils_soudage_patte").
		Where(sq.ILike{"reference": "%" + term + "%"}).
		OrderBy("reference ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search pattes: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "outils_soudage_patte", term)
	}
	defer rows.Close()

	var out []domain.PatteTool
	for rows.Next() {
		p, err := scanPatte(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SearchCoupelles returns coupelle entries whose amortisseur reference
// contains term (case-insensitive), ordered by reference.
func (r *Repo) SearchCoupelles(ctx context.Context, term string) ([]domain.CoupelleTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(coupelleColumns...).
		From("outils_soudage_coupelle").
		Where(sq.ILike{"reference_amortisseur": "%" + term + "%"}).
		OrderBy("reference_amortisseur ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search coupelles: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "outils_soudage_coupelle", term)
	}
	defer rows.Close()

	var out []domain.CoupelleTool
	for rows.Next() {
		c, err := scanCoupelle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// PatteByID fetches one patte entry.
func (r *Repo) PatteByID(ctx context.Context, id uuid.UUID) (*domain.PatteTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(patteColumns...).
		From("outils_soudage_patte").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build patte by id: %w", err)
	}

	row := q.QueryRow(ctx, sql, args...)
	p, err := scanPatte(row)
	if err != nil {
		return nil, postgres.MapError(err, "outils_soudage_patte", id.String())
	}
	return &p, nil
}

// CoupelleByID fetches one coupelle entry.
func (r *Repo) CoupelleByID(ctx context.Context, id uuid.UUID) (*domain.CoupelleTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(coupelleColumns...).
		From("outils_soudage_coupelle").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build coupelle by id: %w", err)
	}

	row := q.QueryRow(ctx, sql, args...)
	c, err := scanCoupelle(row)
	if err != nil {
		return nil, postgres.MapError(err, "outils_soudage_coupelle", id.String())
	}
	return &c, nil
}

// ToolExists reports whether (reference, toolRef) names a tool slot in either
// catalog. The availability checker uses it to reject check-outs of unknown
// tools.
func (r *Repo) ToolExists(ctx context.Context, reference, toolRef string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("1").
		From("outils_soudage_patte").
		Where(sq.Eq{"reference": reference}).
		Where(sq.Or{
			sq.Eq{"reference_outil_1": toolRef},
			sq.Eq{"reference_outil_2": toolRef},
			sq.Eq{"reference_outil_3": toolRef},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build patte exists: %w", err)
	}

	var one int
	err = q.QueryRow(ctx, sql, args...).Scan(&one)
	if err == nil {
		return true, nil
	}
	if !isNoRows(err) {
		return false, postgres.MapError(err, "outils_soudage_patte", reference+"/"+toolRef)
	}

	sql, args, err = qb.Select("1").
		From("outils_soudage_coupelle").
		Where(sq.Eq{"reference_amortisseur": reference}).
		Where(sq.Or{
			sq.Eq{"assise_coupelle_1": toolRef},
			sq.Eq{"axe_coupelle_1": toolRef},
			sq.Eq{"assise_coupelle_2": toolRef},
			sq.Eq{"axe_coupelle_2": toolRef},
			sq.Eq{"assise_coupelle_3": toolRef},
			sq.Eq{"axe_coupelle_3": toolRef},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build coupelle exists: %w", err)
	}

	err = q.QueryRow(ctx, sql, args...).Scan(&one)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, postgres.MapError(err, "outils_soudage_coupelle", reference+"/"+toolRef)
}

// PattesUsingLocation returns patte entries that occupy the given location in
// any of their slots, excluding excludeID (uuid.Nil to exclude nothing).
func (r *Repo) PattesUsingLocation(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.PatteTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(patteColumns...).
		From("outils_soudage_patte").
		Where(sq.Or{
			sq.Eq{"emplacement_outil_1": location},
			sq.Eq{"emplacement_outil_2": location},
			sq.Eq{"emplacement_outil_3": location},
		})
	if excludeID != uuid.Nil {
		query = query.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pattes using location: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "outils_soudage_patte", location)
	}
	defer rows.Close()

	var out []domain.PatteTool
	for rows.Next() {
		p, err := scanPatte(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CoupellesUsingLocation returns coupelle entries that occupy the given
// location in any assise or axe sub-slot, excluding excludeID.
func (r *Repo) CoupellesUsingLocation(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.CoupelleTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(coupelleColumns...).
		From("outils_soudage_coupelle").
		Where(sq.Or{
			sq.Eq{"emp_ass_1": location},
			sq.Eq{"emp_ass_2": location},
			sq.Eq{"emp_ass_3": location},
			sq.Eq{"emp_axe_1": location},
			sq.Eq{"emp_axe_2": location},
			sq.Eq{"emp_axe_3": location},
		})
	if excludeID != uuid.Nil {
		query = query.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build coupelles using location: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "outils_soudage_coupelle", location)
	}
	defer rows.Close()

	var out []domain.CoupelleTool
	for rows.Next() {
		c, err := scanCoupelle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ---------------------------------------------------------------------------
// Admin writes
// ---------------------------------------------------------------------------

// CreatePatte inserts a patte catalog entry.
func (r *Repo) CreatePatte(ctx context.Context, p domain.PatteTool) (*domain.PatteTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("outils_soudage_patte").
		Columns(patteColumns...).
		Values(p.ID, p.PatteAnneauRef, p.Reference,
			p.Slots[0].ToolRef, p.Slots[0].Location,
			p.Slots[1].ToolRef, p.Slots[1].Location,
			p.Slots[2].ToolRef, p.Slots[2].Location,
			p.Commentaire, p.Observation, p.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create patte: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "outils_soudage_patte", p.Reference)
	}
	return &p, nil
}

// UpdatePatte replaces the mutable fields of a patte entry.
func (r *Repo) UpdatePatte(ctx context.Context, p domain.PatteTool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("outils_soudage_patte").
		Set("reference_patte_anneau", p.PatteAnneauRef).
		Set("reference", p.Reference).
		Set("reference_outil_1", p.Slots[0].ToolRef).
		Set("emplacement_outil_1", p.Slots[0].Location).
		Set("reference_outil_2", p.Slots[1].ToolRef).
		Set("emplacement_outil_2", p.Slots[1].Location).
		Set("reference_outil_3", p.Slots[2].ToolRef).
		Set("emplacement_outil_3", p.Slots[2].Location).
		Set("commentaire", p.Commentaire).
		Set("observation", p.Observation).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update patte: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "outils_soudage_patte", p.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outils_soudage_patte %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// DeletePatte removes a patte entry by id.
func (r *Repo) DeletePatte(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "outils_soudage_patte", id)
}

// CreateCoupelle inserts a coupelle catalog entry.
func (r *Repo) CreateCoupelle(ctx context.Context, c domain.CoupelleTool) (*domain.CoupelleTool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("outils_soudage_coupelle").
		Columns(coupelleColumns...).
		Values(c.ID, c.AmortisseurRef, c.CoupelleRef,
			c.Slots[0].Assise, c.Slots[0].AssiseLocation, c.Slots[0].Axe, c.Slots[0].AxeLocation, c.Slots[0].Remark,
			c.Slots[1].Assise, c.Slots[1].AssiseLocation, c.Slots[1].Axe, c.Slots[1].AxeLocation, c.Slots[1].Remark,
			c.Slots[2].Assise, c.Slots[2].AssiseLocation, c.Slots[2].Axe, c.Slots[2].AxeLocation, c.Slots[2].Remark,
			c.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create coupelle: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "outils_soudage_coupelle", c.AmortisseurRef)
	}
	return &c, nil
}

// UpdateCoupelle replaces the mutable fields of a coupelle entry.
func (r *Repo) UpdateCoupelle(ctx context.Context, c domain.CoupelleTool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("outils_soudage_coupelle").
		Set("reference_amortisseur", c.AmortisseurRef).
		Set("reference_coupelle", c.CoupelleRef).
		Set("assise_coupelle_1", c.Slots[0].Assise).
		Set("emp_ass_1", c.Slots[0].AssiseLocation).
		Set("axe_coupelle_1", c.Slots[0].Axe).
		Set("emp_axe_1", c.Slots[0].AxeLocation).
		Set("remarque_outil_1", c.Slots[0].Remark).
		Set("assise_coupelle_2", c.Slots[1].Assise).
		Set("emp_ass_2", c.Slots[1].AssiseLocation).
		Set("axe_coupelle_2", c.Slots[1].Axe).
		Set("emp_axe_2", c.Slots[1].AxeLocation).
		Set("remarque_outil_2", c.Slots[1].Remark).
		Set("assise_coupelle_3", c.Slots[2].Assise).
		Set("emp_ass_3", c.Slots[2].AssiseLocation).
		Set("axe_coupelle_3", c.Slots[2].Axe).
		Set("emp_axe_3", c.Slots[2].AxeLocation).
		Set("remarque_outil_3", c.Slots[2].Remark).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update coupelle: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "outils_soudage_coupelle", c.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("outils_soudage_coupelle %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteCoupelle removes a coupelle entry by id.
func (r *Repo) DeleteCoupelle(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "outils_soudage_coupelle", id)
}

func (r *Repo) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, table, id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatte(row rowScanner) (domain.PatteTool, error) {
	var p domain.PatteTool
	err := row.Scan(
		&p.ID, &p.PatteAnneauRef, &p.Reference,
		&p.Slots[0].ToolRef, &p.Slots[0].Location,
		&p.Slots[1].ToolRef, &p.Slots[1].Location,
		&p.Slots[2].ToolRef, &p.Slots[2].Location,
		&p.Commentaire, &p.Observation, &p.CreatedAt,
	)
	if err != nil {
		return domain.PatteTool{}, err
	}
	return p, nil
}

func scanCoupelle(row rowScanner) (domain.CoupelleTool, error) {
	var c domain.CoupelleTool
	err := row.Scan(
		&c.ID, &c.AmortisseurRef, &c.CoupelleRef,
		&c.Slots[0].Assise, &c.Slots[0].AssiseLocation, &c.Slots[0].Axe, &c.Slots[0].AxeLocation, &c.Slots[0].Remark,
		&c.Slots[1].Assise, &c.Slots[1].AssiseLocation, &c.Slots[1].Axe, &c.Slots[1].AxeLocation, &c.Slots[1].Remark,
		&c.Slots[2].Assise, &c.Slots[2].AssiseLocation, &c.Slots[2].Axe, &c.Slots[2].AxeLocation, &c.Slots[2].Remark,
		&c.CreatedAt,
	)
	if err != nil {
		return domain.CoupelleTool{}, err
	}
	return c, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
