package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// ConfirmShim records the supplied cale thickness for the suspended
// coupelle pair and moves the pair into the pending selection set. The
// thickness is clamped to the allowed range before the insert.
func (s *Service) ConfirmShim(ctx context.Context, input ShimInput) (*domain.ShimRecord, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	if s.currentState() != StateAwaitingShimInput {
		return nil, fmt.Errorf("no cale input pending: %w", domain.ErrConflict)
	}

	s.mu.Lock()
	prompt := s.pendingShim
	s.mu.Unlock()
	if prompt == nil {
		return nil, fmt.Errorf("no cale input pending: %w", domain.ErrConflict)
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec := domain.ShimRecord{
		ID:             uuid.New(),
		AmortisseurRef: prompt.amortRef,
		Assise:         *prompt.selection.Assise,
		Axe:            *prompt.selection.Axe,
		ThicknessMm:    domain.ClampThickness(input.ThicknessMm, s.cfg.MaxShimThickness),
		PersonName:     ctxutil.DisplayNameFromCtx(ctx),
		UserID:         userID,
		RecordedAt:     time.Now().UTC(),
	}
	if err := s.shims.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("record cale: %w", err)
	}

	s.log.InfoContext(ctx, "cale recorded",
		slog.String("assise", rec.Assise),
		slog.String("axe", rec.Axe),
		slog.Int("thickness_mm", rec.ThicknessMm),
	)

	s.finishShimWorkflow(prompt)
	return &rec, nil
}

// AcknowledgeShim accepts the existing cale thickness surfaced during the
// toggle and moves the pair into the pending selection set. No new record
// is written.
func (s *Service) AcknowledgeShim() error {
	if s.currentState() != StateAwaitingShimAck {
		return fmt.Errorf("no cale acknowledgement pending: %w", domain.ErrConflict)
	}

	s.mu.Lock()
	prompt := s.pendingShim
	s.mu.Unlock()
	if prompt == nil {
		return fmt.Errorf("no cale acknowledgement pending: %w", domain.ErrConflict)
	}

	s.finishShimWorkflow(prompt)
	return nil
}

// CancelShim abandons the suspended pair without adding it to the pending
// set or writing anything.
func (s *Service) CancelShim() {
	s.mu.Lock()
	s.pendingShim = nil
	empty := len(s.selections) == 0
	s.mu.Unlock()

	if empty {
		s.setState(StateIdle)
	} else {
		s.setState(StateSelecting)
	}
}

func (s *Service) finishShimWorkflow(prompt *shimPrompt) {
	s.mu.Lock()
	s.selections = append(s.selections, prompt.selection)
	s.pendingShim = nil
	s.mu.Unlock()
	s.setState(StateSelecting)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
