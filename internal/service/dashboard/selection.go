package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// ToggleSelection adds a tool to the pending selection set, or removes it
// when the identical tuple is already pending. Adding runs the
// availability check first; a coupelle slot carrying both an assise and an
// axe code additionally enters the cale workflow before the selection
// lands in the pending set.
func (s *Service) ToggleSelection(ctx context.Context, input ToggleInput) (*ToggleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	switch s.currentState() {
	case StateIdle, StateSelecting:
	default:
		return nil, domain.ErrBusy
	}

	sel := input.Selection
	if sel.Quantity == 0 {
		sel.Quantity = s.cfg.DefaultQuantity
	}

	// Toggle off: identical tuple already pending.
	if removed := s.removeSelection(sel); removed {
		if len(s.Selections()) == 0 {
			s.setState(StateIdle)
		}
		return &ToggleResult{Removed: true}, nil
	}

	tuples, amortRef, err := s.resolveTuples(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(tuples) == 0 {
		return nil, domain.NewValidationError("selection", "no tool code in the selected slot")
	}

	for _, t := range tuples {
		ok, err := s.IsAvailable(ctx, t.Reference, t.ToolRef)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%s/%s: %w", t.Reference, t.ToolRef, domain.ErrUnavailable)
		}
	}

	// A coupelle pair with both sub-tools present goes through the cale
	// workflow before joining the pending set.
	if sel.Kind == domain.ToolKindCoupelle && sel.Assise != nil && sel.Axe != nil {
		return s.beginShimWorkflow(ctx, sel, amortRef)
	}

	s.addSelection(sel)
	s.setState(StateSelecting)
	return &ToggleResult{Added: true}, nil
}

// UpdateQuantity changes the quantity of a pending selection in place.
func (s *Service) UpdateQuantity(input UpdateQuantityInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.selections {
		if s.selections[i].Matches(input.Selection) {
			s.selections[i].Quantity = input.Quantity
			return nil
		}
	}
	return fmt.Errorf("selection: %w", domain.ErrNotFound)
}

// IsSelected reports whether the identical tuple is pending.
func (s *Service) IsSelected(sel domain.Selection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.selections {
		if cur.Matches(sel) {
			return true
		}
	}
	return false
}

// SelectedQuantity returns the pending quantity for the tuple, or 0 when
// it is not selected.
func (s *Service) SelectedQuantity(sel domain.Selection) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.selections {
		if cur.Matches(sel) {
			return cur.Quantity
		}
	}
	return 0
}

// ClearSelections discards the pending set and returns to idle. Pending
// confirmation state is discarded too; nothing already committed is
// rolled back.
func (s *Service) ClearSelections() {
	s.mu.Lock()
	s.selections = nil
	s.pendingShim = nil
	s.pendingBatch = nil
	s.mu.Unlock()
	s.setState(StateIdle)
}

func (s *Service) addSelection(sel domain.Selection) {
	s.mu.Lock()
	s.selections = append(s.selections, sel)
	s.mu.Unlock()
}

func (s *Service) removeSelection(sel domain.Selection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.selections {
		if cur.Matches(sel) {
			s.selections = append(s.selections[:i], s.selections[i+1:]...)
			return true
		}
	}
	return false
}

// resolveTuples expands a selection into the individual tool tuples it
// implicates, fetching the catalog entry to resolve codes and locations.
// The second return value is the amortisseur reference for coupelles.
func (s *Service) resolveTuples(ctx context.Context, sel domain.Selection) ([]domain.SlotTuple, string, error) {
	switch sel.Kind {
	case domain.ToolKindPatte:
		tool, err := s.catalog.PatteByID(ctx, sel.ItemID)
		if err != nil {
			return nil, "", fmt.Errorf("get patte: %w", err)
		}
		if sel.SlotIndex != nil {
			t, ok := tool.SlotTuple(*sel.SlotIndex)
			if !ok {
				return nil, "", nil
			}
			return []domain.SlotTuple{t}, "", nil
		}
		return tool.Tuples(), "", nil

	case domain.ToolKindCoupelle:
		tool, err := s.catalog.CoupelleByID(ctx, sel.ItemID)
		if err != nil {
			return nil, "", fmt.Errorf("get coupelle: %w", err)
		}
		if sel.SlotIndex == nil {
			return tool.Tuples(), tool.AmortisseurRef, nil
		}
		var tuples []domain.SlotTuple
		if sel.Assise != nil {
			if t, ok := tool.AssiseTuple(*sel.SlotIndex); ok {
				tuples = append(tuples, t)
			}
		}
		if sel.Axe != nil {
			if t, ok := tool.AxeTuple(*sel.SlotIndex); ok {
				tuples = append(tuples, t)
			}
		}
		return tuples, tool.AmortisseurRef, nil

	default:
		return nil, "", domain.NewValidationError("kind", "must be patte or coupelle")
	}
}

// beginShimWorkflow looks up the cale record for the pair and suspends the
// selection on either acknowledgement (record found) or thickness input
// (no record yet).
func (s *Service) beginShimWorkflow(ctx context.Context, sel domain.Selection, amortRef string) (*ToggleResult, error) {
	rec, err := s.shims.Find(ctx, *sel.Assise, *sel.Axe)
	switch {
	case err == nil:
		s.mu.Lock()
		s.pendingShim = &shimPrompt{selection: sel, existing: rec, amortRef: amortRef}
		s.mu.Unlock()
		s.setState(StateAwaitingShimAck)

		s.log.InfoContext(ctx, "existing cale found",
			slog.String("assise", *sel.Assise),
			slog.String("axe", *sel.Axe),
			slog.Int("thickness_mm", rec.ThicknessMm),
		)
		return &ToggleResult{ShimExisting: rec}, nil

	case isNotFound(err):
		s.mu.Lock()
		s.pendingShim = &shimPrompt{selection: sel, amortRef: amortRef}
		s.mu.Unlock()
		s.setState(StateAwaitingShimInput)
		return &ToggleResult{ShimPromptPending: true}, nil

	default:
		return nil, fmt.Errorf("lookup cale: %w", err)
	}
}
