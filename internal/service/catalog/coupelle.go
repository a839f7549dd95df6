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

// CreateCoupelle creates a coupelle catalog entry after checking that
// every supplied location is free across both catalogs.
func (s *Service) CreateCoupelle(ctx context.Context, input CreateCoupelleInput) (*domain.CoupelleTool, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := domain.CoupelleTool{
		ID:             uuid.New(),
		AmortisseurRef: strings.TrimSpace(input.AmortisseurRef),
		CoupelleRef:    strings.TrimSpace(input.CoupelleRef),
		CreatedAt:      time.Now().UTC(),
	}
	for i, slot := range input.Slots {
		c.Slots[i] = domain.CoupelleSlot{
			Assise:         trimOrNil(slot.Assise),
			AssiseLocation: trimOrNil(slot.AssiseLocation),
			Axe:            trimOrNil(slot.Axe),
			AxeLocation:    trimOrNil(slot.AxeLocation),
			Remark:         trimOrNil(slot.Remark),
		}
	}

	var created *domain.CoupelleTool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureLocationsFree(txCtx, coupelleLocations(&c), uuid.Nil, uuid.Nil); err != nil {
			return err
		}
		var createErr error
		created, createErr = s.catalog.CreateCoupelle(txCtx, c)
		if createErr != nil {
			return fmt.Errorf("create coupelle: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "coupelle created",
		slog.String("id", created.ID.String()),
		slog.String("reference", created.AmortisseurRef),
	)
	return created, nil
}

// UpdateCoupelle replaces a coupelle entry. Only locations the edit
// introduces are checked for collisions.
func (s *Service) UpdateCoupelle(ctx context.Context, input UpdateCoupelleInput) (*domain.CoupelleTool, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	next := domain.CoupelleTool{
		ID:             input.ID,
		AmortisseurRef: strings.TrimSpace(input.AmortisseurRef),
		CoupelleRef:    strings.TrimSpace(input.CoupelleRef),
	}
	for i, slot := range input.Slots {
		next.Slots[i] = domain.CoupelleSlot{
			Assise:         trimOrNil(slot.Assise),
			AssiseLocation: trimOrNil(slot.AssiseLocation),
			Axe:            trimOrNil(slot.Axe),
			AxeLocation:    trimOrNil(slot.AxeLocation),
			Remark:         trimOrNil(slot.Remark),
		}
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prev, err := s.catalog.CoupelleByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get coupelle: %w", err)
		}

		introduced := newLocations(coupelleLocations(prev), coupelleLocations(&next))
		if err := s.ensureLocationsFree(txCtx, introduced, uuid.Nil, input.ID); err != nil {
			return err
		}

		if err := s.catalog.UpdateCoupelle(txCtx, next); err != nil {
			return fmt.Errorf("update coupelle: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "coupelle updated",
		slog.String("id", next.ID.String()),
		slog.String("reference", next.AmortisseurRef),
	)
	return &next, nil
}

// DeleteCoupelle removes a coupelle entry.
func (s *Service) DeleteCoupelle(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.catalog.DeleteCoupelle(ctx, id); err != nil {
		return fmt.Errorf("delete coupelle: %w", err)
	}

	s.log.InfoContext(ctx, "coupelle deleted", slog.String("id", id.String()))
	return nil
}
