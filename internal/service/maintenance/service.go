// Package maintenance exposes the admin registers: direct listing and
// correction of the exit log, the entry log, the cale registry and the
// critical-tool list. Every method requires an admin caller; the dashboard
// workflows never go through this service.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type historyRepo interface {
	List(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryItem, error)
	Update(ctx context.Context, item domain.HistoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type entryLogRepo interface {
	ListDay(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type shimRepo interface {
	List(ctx context.Context, f domain.ShimFilter) ([]domain.ShimRecord, error)
	Update(ctx context.Context, rec domain.ShimRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type criticalRepo interface {
	List(ctx context.Context) ([]domain.CriticalTool, error)
	Create(ctx context.Context, tool domain.CriticalTool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the admin maintenance operations.
type Service struct {
	history  historyRepo
	entries  entryLogRepo
	shims    shimRepo
	critical criticalRepo
	log      *slog.Logger
}

// NewService creates a maintenance Service.
func NewService(
	logger *slog.Logger,
	history historyRepo,
	entries entryLogRepo,
	shims shimRepo,
	critical criticalRepo,
) *Service {
	return &Service{
		history:  history,
		entries:  entries,
		shims:    shims,
		critical: critical,
		log:      logger.With("service", "maintenance"),
	}
}
