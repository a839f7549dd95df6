package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// CreatePatte creates a patte catalog entry after checking that every
// supplied location is free across both catalogs.
func (s *Service) CreatePatte(ctx context.Context, input CreatePatteInput) (*domain.PatteTool, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := domain.PatteTool{
		ID:             uuid.New(),
		PatteAnneauRef: strings.TrimSpace(input.PatteAnneauRef),
		Reference:      strings.TrimSpace(input.Reference),
		Commentaire:    trimOrNil(input.Commentaire),
		Observation:    trimOrNil(input.Observation),
		CreatedAt:      time.Now().UTC(),
	}
	for i, slot := range input.Slots {
		p.Slots[i] = domain.PatteSlot{
			ToolRef:  trimOrNil(slot.ToolRef),
			Location: trimOrNil(slot.Location),
		}
	}

	var created *domain.PatteTool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureLocationsFree(txCtx, pattLocations(&p), uuid.Nil, uuid.Nil); err != nil {
			return err
		}
		var createErr error
		created, createErr = s.catalog.CreatePatte(txCtx, p)
		if createErr != nil {
			return fmt.Errorf("create patte: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "patte created",
		slog.String("id", created.ID.String()),
		slog.String("reference", created.Reference),
	)
	return created, nil
}

// UpdatePatte replaces a patte entry. Only locations the edit introduces
// are checked for collisions; locations the entry already occupied are
// kept as-is.
func (s *Service) UpdatePatte(ctx context.Context, input UpdatePatteInput) (*domain.PatteTool, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	next := domain.PatteTool{
		ID:             input.ID,
		PatteAnneauRef: strings.TrimSpace(input.PatteAnneauRef),
		Reference:      strings.TrimSpace(input.Reference),
		Commentaire:    trimOrNil(input.Commentaire),
		Observation:    trimOrNil(input.Observation),
	}
	for i, slot := range input.Slots {
		next.Slots[i] = domain.PatteSlot{
			ToolRef:  trimOrNil(slot.ToolRef),
			Location: trimOrNil(slot.Location),
		}
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prev, err := s.catalog.PatteByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get patte: %w", err)
		}

		introduced := newLocations(pattLocations(prev), pattLocations(&next))
		if err := s.ensureLocationsFree(txCtx, introduced, input.ID, uuid.Nil); err != nil {
			return err
		}

		if err := s.catalog.UpdatePatte(txCtx, next); err != nil {
			return fmt.Errorf("update patte: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "patte updated",
		slog.String("id", next.ID.String()),
		slog.String("reference", next.Reference),
	)
	return &next, nil
}

// DeletePatte removes a patte entry.
func (s *Service) DeletePatte(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.catalog.DeletePatte(ctx, id); err != nil {
		return fmt.Errorf("delete patte: %w", err)
	}

	s.log.InfoContext(ctx, "patte deleted", slog.String("id", id.String()))
	return nil
}
