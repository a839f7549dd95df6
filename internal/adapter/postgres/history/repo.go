// Package history implements the exit-log repository (table historique).
// Rows are append-only in the movement workflows; the admin console may
// update or delete them.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// Repo provides exit-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exit-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an exit-log row.
func (r *Repo) Create(ctx context.Context, item domain.HistoryItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("historique").
		Columns(columns...).
		Values(item.ID, item.Reference, item.ToolRef, item.Location,
			item.PersonName, item.Activity, item.Quantity, item.CreatedBy, item.OperationAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create historique: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "historique", item.ToolRef)
	}
	return nil
}

// LastQuantity returns the quantity of the most recent exit-log row for
// (reference, toolRef), or 0 when no row exists. The threshold evaluator
// reads this value as the tool's running total.
func (r *Repo) LastQuantity(ctx context.Context, reference, toolRef string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("quantite").
		From("historique").
		Where(sq.Eq{"reference": reference, "reference_outil": toolRef}).
		OrderBy("date_operation DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build last quantity: %w", err)
	}

	var quantity int
	err = q.QueryRow(ctx, sql, args...).Scan(&quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "historique", reference+"/"+toolRef)
	}
	return quantity, nil
}

// ListDay returns the exit-log rows of the given calendar day,
// most recent first.
func (r *Repo) ListDay(ctx context.Context, day time.Time) ([]domain.HistoryItem, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("historique").
		Where(sq.GtOrEq{"date_operation": start}).
		Where(sq.Lt{"date_operation": end}).
		OrderBy("date_operation DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list day: %w", err)
	}

	return r.queryItems(ctx, q, sql, args)
}

// ReferencesWithHistory returns the subset of refs that have at least one
// exit-log row. The dashboard uses it to mark search results that already
// carry movement history.
func (r *Repo) ReferencesWithHistory(ctx context.Context, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("DISTINCT reference").
		From("historique").
		Where(sq.Eq{"reference": refs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build references with history: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "historique", "references")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// List returns exit-log rows matching the filter.
func (r *Repo) List(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(columns...).From("historique")
	if f.From != nil {
		query = query.Where(sq.GtOrEq{"date_operation": *f.From})
	}
	if f.To != nil {
		query = query.Where(sq.LtOrEq{"date_operation": *f.To})
	}
	if f.Reference != nil && *f.Reference != "" {
		query = query.Where(sq.ILike{"reference": "%" + *f.Reference + "%"})
	}
	if f.Ascending {
		query = query.OrderBy("date_operation ASC")
	} else {
		query = query.OrderBy("date_operation DESC")
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list historique: %w", err)
	}

	return r.queryItems(ctx, q, sql, args)
}

// Update rewrites an existing exit-log row (admin maintenance only).
func (r *Repo) Update(ctx context.Context, item domain.HistoryItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("historique").
		Set("reference", item.Reference).
		Set("reference_outil", item.ToolRef).
		Set("emplacement", item.Location).
		Set("nom_prenom_personne", item.PersonName).
		Set("activite", item.Activity).
		Set("quantite", item.Quantity).
		Set("date_operation", item.OperationAt).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update historique: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "historique", item.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("historique %s: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an exit-log row by id (admin maintenance only).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("historique").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete historique: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "historique", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("historique %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) queryItems(ctx context.Context, q postgres.Querier, sql string, args []any) ([]domain.HistoryItem, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "historique", "list")
	}
	defer rows.Close()

	var out []domain.HistoryItem
	for rows.Next() {
		var item domain.HistoryItem
		err := rows.Scan(&item.ID, &item.Reference, &item.ToolRef, &item.Location,
			&item.PersonName, &item.Activity, &item.Quantity, &item.CreatedBy, &item.OperationAt)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
