// Package catalog implements the admin-facing catalog management
// operations: create, update and delete of patte and coupelle entries,
// with storage-location validation across both catalogs.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

type catalogRepo interface {
	SearchPattes(ctx context.Context, term string) ([]domain.PatteTool, error)
	SearchCoupelles(ctx context.Context, term string) ([]domain.CoupelleTool, error)
	PatteByID(ctx context.Context, id uuid.UUID) (*domain.PatteTool, error)
	CoupelleByID(ctx context.Context, id uuid.UUID) (*domain.CoupelleTool, error)

	PattesUsingLocation(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.PatteTool, error)
	CoupellesUsingLocation(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.CoupelleTool, error)

	CreatePatte(ctx context.Context, p domain.PatteTool) (*domain.PatteTool, error)
	UpdatePatte(ctx context.Context, p domain.PatteTool) error
	DeletePatte(ctx context.Context, id uuid.UUID) error

	CreateCoupelle(ctx context.Context, c domain.CoupelleTool) (*domain.CoupelleTool, error)
	UpdateCoupelle(ctx context.Context, c domain.CoupelleTool) error
	DeleteCoupelle(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides admin catalog management.
type Service struct {
	catalog catalogRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new catalog admin service.
func NewService(log *slog.Logger, catalog catalogRepo, tx txManager) *Service {
	return &Service{
		catalog: catalog,
		tx:      tx,
		log:     log.With("service", "catalog"),
	}
}

// ListPattes returns patte entries matching the term, all of them for an
// empty term.
func (s *Service) ListPattes(ctx context.Context, term string) ([]domain.PatteTool, error) {
	return s.catalog.SearchPattes(ctx, term)
}

// ListCoupelles returns coupelle entries matching the term.
func (s *Service) ListCoupelles(ctx context.Context, term string) ([]domain.CoupelleTool, error) {
	return s.catalog.SearchCoupelles(ctx, term)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
