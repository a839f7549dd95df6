package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// ListCritical returns every critical-tool entry (admin only).
func (s *Service) ListCritical(ctx context.Context) ([]domain.CriticalTool, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	tools, err := s.critical.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("maintenance.ListCritical: %w", err)
	}
	return tools, nil
}

// CreateCritical registers a tool reference as critical (admin only). From
// the next batch on, any check-out touching the reference suspends for a
// cleaning acknowledgement.
func (s *Service) CreateCritical(ctx context.Context, input CreateCriticalInput) (*domain.CriticalTool, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.Reference = strings.TrimSpace(input.Reference)
	input.ToolRef = strings.TrimSpace(input.ToolRef)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tool := domain.CriticalTool{
		ID:           uuid.New(),
		Reference:    input.Reference,
		ComposantRef: input.ComposantRef,
		ToolRef:      input.ToolRef,
		Location:     input.Location,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.critical.Create(ctx, tool); err != nil {
		return nil, fmt.Errorf("maintenance.CreateCritical: %w", err)
	}

	s.log.InfoContext(ctx, "critical tool registered",
		slog.String("reference", tool.Reference),
		slog.String("tool_ref", tool.ToolRef),
	)
	return &tool, nil
}

// DeleteCritical removes a critical-tool entry (admin only).
func (s *Service) DeleteCritical(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.critical.Delete(ctx, id); err != nil {
		return fmt.Errorf("maintenance.DeleteCritical: %w", err)
	}

	s.log.InfoContext(ctx, "critical tool removed", slog.String("id", id.String()))
	return nil
}
