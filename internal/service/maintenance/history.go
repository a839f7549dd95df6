package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// ListHistory returns exit-log rows matching the filter (admin only).
func (s *Service) ListHistory(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryItem, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	items, err := s.history.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("maintenance.ListHistory: %w", err)
	}
	return items, nil
}

// UpdateHistory rewrites an exit-log row in place (admin only). Editing the
// quantity of a tool's most recent row changes the running total the
// threshold evaluator sees for that tool.
func (s *Service) UpdateHistory(ctx context.Context, input UpdateHistoryInput) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return err
	}

	item := domain.HistoryItem{
		ID:          input.ID,
		Reference:   input.Reference,
		ToolRef:     input.ToolRef,
		Location:    input.Location,
		PersonName:  input.PersonName,
		Activity:    input.Activity,
		Quantity:    input.Quantity,
		OperationAt: input.OperationAt.UTC(),
	}
	if err := s.history.Update(ctx, item); err != nil {
		return fmt.Errorf("maintenance.UpdateHistory: %w", err)
	}

	s.log.InfoContext(ctx, "exit-log row updated",
		slog.String("id", input.ID.String()),
		slog.String("tool_ref", input.ToolRef),
		slog.Int("quantity", input.Quantity),
	)
	return nil
}

// DeleteHistory removes an exit-log row (admin only).
func (s *Service) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.history.Delete(ctx, id); err != nil {
		return fmt.Errorf("maintenance.DeleteHistory: %w", err)
	}

	s.log.InfoContext(ctx, "exit-log row deleted", slog.String("id", id.String()))
	return nil
}

// ListEntries returns the entry-log rows of one day (admin only).
func (s *Service) ListEntries(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	items, err := s.entries.ListDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("maintenance.ListEntries: %w", err)
	}
	return items, nil
}

// DeleteEntry removes an entry-log row (admin only).
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("maintenance.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry-log row deleted", slog.String("id", id.String()))
	return nil
}
