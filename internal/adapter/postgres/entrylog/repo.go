// Package entrylog implements the entry-log repository (table
// historique_entree): the audit trail of check-ins. Entry rows carry no
// activity kind.
package entrylog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres"
	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "reference", "reference_outil", "emplacement",
	"nom_prenom_personne", "quantite", "created_by", "date_operation",
}

// Repo provides entry-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an entry-log row.
func (r *Repo) Create(ctx context.Context, item domain.EntryHistoryItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("historique_entree").
		Columns(columns...).
		Values(item.ID, item.Reference, item.ToolRef, item.Location,
			item.PersonName, item.Quantity, item.CreatedBy, item.OperationAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create historique_entree: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "historique_entree", item.ToolRef)
	}
	return nil
}

// ListDay returns the entry-log rows of the given calendar day,
// most recent first.
func (r *Repo) ListDay(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("historique_entree").
		Where(sq.GtOrEq{"date_operation": start}).
		Where(sq.Lt{"date_operation": end}).
		OrderBy("date_operation DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list day: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "historique_entree", "list")
	}
	defer rows.Close()

	var out []domain.EntryHistoryItem
	for rows.Next() {
		var item domain.EntryHistoryItem
		err := rows.Scan(&item.ID, &item.Reference, &item.ToolRef, &item.Location,
			&item.PersonName, &item.Quantity, &item.CreatedBy, &item.OperationAt)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Delete removes an entry-log row by id (admin maintenance only).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("historique_entree").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete historique_entree: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "historique_entree", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("historique_entree %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
