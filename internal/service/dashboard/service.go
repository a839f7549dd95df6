package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogRepo interface {
	SearchPattes(ctx context.Context, term string) ([]domain.PatteTool, error)
	SearchCoupelles(ctx context.Context, term string) ([]domain.CoupelleTool, error)
	PatteByID(ctx context.Context, id uuid.UUID) (*domain.PatteTool, error)
	CoupelleByID(ctx context.Context, id uuid.UUID) (*domain.CoupelleTool, error)
	ToolExists(ctx context.Context, reference, toolRef string) (bool, error)
}

type inProgressRepo interface {
	Exists(ctx context.Context, reference, toolRef string) (bool, error)
	Create(ctx context.Context, rec domain.InProgressTool) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InProgressTool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.InProgressTool, error)
}

type historyRepo interface {
	Create(ctx context.Context, item domain.HistoryItem) error
	LastQuantity(ctx context.Context, reference, toolRef string) (int, error)
	ListDay(ctx context.Context, day time.Time) ([]domain.HistoryItem, error)
	ReferencesWithHistory(ctx context.Context, refs []string) ([]string, error)
}

type entryLogRepo interface {
	Create(ctx context.Context, item domain.EntryHistoryItem) error
	ListDay(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error)
}

type shimRepo interface {
	Find(ctx context.Context, assise, axe string) (*domain.ShimRecord, error)
	Create(ctx context.Context, rec domain.ShimRecord) error
}

type criticalRepo interface {
	FindByToolRefs(ctx context.Context, refs []string) ([]domain.CriticalTool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config carries the workshop rules the orchestrator enforces.
type Config struct {
	// ThresholdCeiling is the cumulative issued quantity above which a
	// check-out requires a maintenance acknowledgement.
	ThresholdCeiling int
	// MaxShimThickness is the upper clamp bound for cale thickness in mm.
	MaxShimThickness int
	// DefaultQuantity replaces a zero quantity on selection.
	DefaultQuantity int
}

// Service is the check-out/check-in orchestrator. It owns the pending
// selection set and the suspended-confirmation state, and serializes the
// multi-step store sequences behind a single in-flight guard: a second
// store-facing call while one is running fails with domain.ErrBusy
// instead of interleaving.
type Service struct {
	catalog    catalogRepo
	inProgress inProgressRepo
	history    historyRepo
	entryLog   entryLogRepo
	shims      shimRepo
	critical   criticalRepo
	log        *slog.Logger
	cfg        Config

	mu         sync.Mutex
	busy       bool
	state      State
	selections []domain.Selection

	pendingShim  *shimPrompt
	pendingBatch *batch

	observers []func(State)
}

// shimPrompt holds a selection suspended on the cale workflow.
type shimPrompt struct {
	selection domain.Selection
	existing  *domain.ShimRecord
	amortRef  string
}

// NewService creates a new dashboard orchestrator.
func NewService(
	log *slog.Logger,
	catalog catalogRepo,
	inProgress inProgressRepo,
	history historyRepo,
	entryLog entryLogRepo,
	shims shimRepo,
	critical criticalRepo,
	cfg Config,
) (*Service, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		catalog:    catalog,
		inProgress: inProgress,
		history:    history,
		entryLog:   entryLog,
		shims:      shims,
		critical:   critical,
		log:        log.With("service", "dashboard"),
		cfg:        cfg,
		state:      StateIdle,
	}, nil
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.ThresholdCeiling <= 0 {
		return cfg, fmt.Errorf("threshold ceiling must be positive, got %d", cfg.ThresholdCeiling)
	}
	if cfg.MaxShimThickness <= 0 {
		return cfg, fmt.Errorf("max shim thickness must be positive, got %d", cfg.MaxShimThickness)
	}
	if cfg.DefaultQuantity <= 0 {
		cfg.DefaultQuantity = 1
	}
	return cfg, nil
}

// Subscribe registers a callback invoked after every state transition.
// Callbacks run synchronously and must not call back into the Service.
func (s *Service) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// State returns the orchestrator's current workflow state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Selections returns a copy of the pending selection set.
func (s *Service) Selections() []domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// acquire marks the service busy or fails with domain.ErrBusy when another
// store-facing operation is already in flight.
func (s *Service) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return domain.ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// setState transitions the workflow state and notifies observers.
// Must be called without holding s.mu.
func (s *Service) setState(next State) {
	s.mu.Lock()
	s.state = next
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
}

func (s *Service) currentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
