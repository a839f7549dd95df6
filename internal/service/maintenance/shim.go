package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// ListShims returns cale records matching the filter (admin only).
func (s *Service) ListShims(ctx context.Context, f domain.ShimFilter) ([]domain.ShimRecord, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	recs, err := s.shims.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("maintenance.ListShims: %w", err)
	}
	return recs, nil
}

// UpdateShim rewrites a cale record (admin only). The thickness is clamped
// into the accepted range like a dashboard-entered one.
func (s *Service) UpdateShim(ctx context.Context, input UpdateShimInput) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return err
	}

	rec := domain.ShimRecord{
		ID:             input.ID,
		AmortisseurRef: input.AmortisseurRef,
		Assise:         input.Assise,
		Axe:            input.Axe,
		ThicknessMm:    domain.ClampThickness(input.ThicknessMm, domain.MaxShimThickness),
	}
	if err := s.shims.Update(ctx, rec); err != nil {
		return fmt.Errorf("maintenance.UpdateShim: %w", err)
	}

	s.log.InfoContext(ctx, "cale record updated",
		slog.String("id", input.ID.String()),
		slog.Int("thickness_mm", rec.ThicknessMm),
	)
	return nil
}

// DeleteShim removes a cale record (admin only). The next check-out of the
// pair will prompt for a fresh thickness.
func (s *Service) DeleteShim(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.shims.Delete(ctx, id); err != nil {
		return fmt.Errorf("maintenance.DeleteShim: %w", err)
	}

	s.log.InfoContext(ctx, "cale record deleted", slog.String("id", id.String()))
	return nil
}
