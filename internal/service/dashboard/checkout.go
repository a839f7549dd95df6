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

// errThresholdDeclined marks a tuple skipped because the user declined the
// maintenance acknowledgement.
var errThresholdDeclined = errors.New("maintenance acknowledgement declined")

// checkoutTuple is one expanded (reference, tool, location, quantity) unit
// of work inside a commit batch.
type checkoutTuple struct {
	reference string
	toolRef   string
	location  *string
	quantity  int
}

// batch holds a commit in flight, including the tuples still queued and
// the results of the ones already processed.
type batch struct {
	personName string
	createdBy  uuid.UUID
	queue      []checkoutTuple
	results    []TupleOutcome
	suspended  *checkoutTuple
}

// Validate commits the pending selection set as a check-out batch. The
// critical-tool gate runs once over the whole expanded batch before any
// write; a hit suspends everything pending one combined acknowledgement.
// Otherwise tuples are processed sequentially and independently: a failed
// tuple is reported and its siblings still run, and a tuple that crosses
// the maintenance ceiling suspends the batch at that point without
// rolling back what came before.
func (s *Service) Validate(ctx context.Context, input ValidateInput) (*CommitOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	if s.currentState() != StateSelecting {
		return nil, fmt.Errorf("nothing selected: %w", domain.ErrConflict)
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	selections := s.Selections()
	if len(selections) == 0 {
		return nil, domain.NewValidationError("selections", "required (at least 1)")
	}
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return nil, domain.NewValidationError("quantity", "must be positive")
		}
	}

	tuples, err := s.expandSelections(ctx, selections)
	if err != nil {
		return nil, err
	}
	if len(tuples) == 0 {
		return nil, domain.NewValidationError("selections", "expanded to no tool codes")
	}

	b := &batch{
		personName: input.PersonName,
		createdBy:  userID,
		queue:      tuples,
	}

	// Critical gate first, over the full batch, before any write.
	refs := make([]string, 0, len(tuples))
	for _, t := range tuples {
		refs = append(refs, t.toolRef)
	}
	flagged, err := s.critical.FindByToolRefs(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("classify critical tools: %w", err)
	}
	if len(flagged) > 0 {
		s.mu.Lock()
		s.pendingBatch = b
		s.mu.Unlock()
		s.setState(StateAwaitingCriticalAck)

		s.log.InfoContext(ctx, "batch suspended on critical tools",
			slog.Int("flagged", len(flagged)),
			slog.Int("tuples", len(tuples)),
		)
		return &CommitOutcome{Critical: flagged}, nil
	}

	return s.processQueue(ctx, b)
}

// ConfirmCritical grants the combined criticality acknowledgement and
// resumes the suspended batch.
func (s *Service) ConfirmCritical(ctx context.Context) (*CommitOutcome, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	b := s.takeBatch(StateAwaitingCriticalAck)
	if b == nil {
		return nil, fmt.Errorf("no critical acknowledgement pending: %w", domain.ErrConflict)
	}
	return s.processQueue(ctx, b)
}

// DeclineCritical aborts the suspended batch. Nothing was written for any
// tuple, so the whole selection set is discarded.
func (s *Service) DeclineCritical() error {
	b := s.takeBatch(StateAwaitingCriticalAck)
	if b == nil {
		return fmt.Errorf("no critical acknowledgement pending: %w", domain.ErrConflict)
	}
	s.ClearSelections()
	return nil
}

// ConfirmThreshold grants the maintenance acknowledgement for the
// suspended tuple: its in-progress record and corrective exit-log row are
// written along with a zero-quantity preventive row marking the
// maintenance event, then the rest of the batch resumes.
func (s *Service) ConfirmThreshold(ctx context.Context) (*CommitOutcome, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	b := s.takeBatch(StateAwaitingThresholdAck)
	if b == nil || b.suspended == nil {
		return nil, fmt.Errorf("no maintenance acknowledgement pending: %w", domain.ErrConflict)
	}

	t := *b.suspended
	b.suspended = nil

	outcome := TupleOutcome{
		Reference: t.reference,
		ToolRef:   t.toolRef,
		Location:  t.location,
		Quantity:  t.quantity,
	}
	if err := s.writeTuple(ctx, b, t); err != nil {
		outcome.Err = err
	} else if err := s.writePreventiveMark(ctx, b, t); err != nil {
		// The corrective rows landed; the preventive marker did not.
		// Report distinctly but keep the tuple successful.
		s.log.ErrorContext(ctx, "preventive marker write failed after corrective rows",
			slog.String("reference", t.reference),
			slog.String("tool", t.toolRef),
			slog.String("error", err.Error()),
		)
	}
	b.results = append(b.results, outcome)

	return s.processQueue(ctx, b)
}

// DeclineThreshold skips the suspended tuple without writing anything for
// it and resumes the rest of the batch.
func (s *Service) DeclineThreshold(ctx context.Context) (*CommitOutcome, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	b := s.takeBatch(StateAwaitingThresholdAck)
	if b == nil || b.suspended == nil {
		return nil, fmt.Errorf("no maintenance acknowledgement pending: %w", domain.ErrConflict)
	}

	t := *b.suspended
	b.suspended = nil
	b.results = append(b.results, TupleOutcome{
		Reference: t.reference,
		ToolRef:   t.toolRef,
		Location:  t.location,
		Quantity:  t.quantity,
		Err:       errThresholdDeclined,
	})

	return s.processQueue(ctx, b)
}

// processQueue drains the batch queue sequentially. Each tuple is
// re-checked against the in-progress table, evaluated against the
// maintenance ceiling, and written. Later tuples observe the store state
// left by earlier writes.
func (s *Service) processQueue(ctx context.Context, b *batch) (*CommitOutcome, error) {
	s.setState(StateCommitting)

	for len(b.queue) > 0 {
		t := b.queue[0]
		b.queue = b.queue[1:]

		outcome := TupleOutcome{
			Reference: t.reference,
			ToolRef:   t.toolRef,
			Location:  t.location,
			Quantity:  t.quantity,
		}

		out, err := s.inProgress.Exists(ctx, t.reference, t.toolRef)
		if err != nil {
			outcome.Err = fmt.Errorf("check in-progress: %w", err)
			b.results = append(b.results, outcome)
			continue
		}
		if out {
			outcome.Err = fmt.Errorf("%s/%s: %w", t.reference, t.toolRef, domain.ErrUnavailable)
			b.results = append(b.results, outcome)
			continue
		}

		eval, err := s.evaluateThreshold(ctx, t.reference, t.toolRef, t.quantity)
		if err != nil {
			outcome.Err = err
			b.results = append(b.results, outcome)
			continue
		}
		if eval.exceeds {
			b.suspended = &t
			s.mu.Lock()
			s.pendingBatch = b
			s.mu.Unlock()
			s.setState(StateAwaitingThresholdAck)

			return &CommitOutcome{
				Results: b.results,
				Threshold: &ThresholdPrompt{
					Reference:    t.reference,
					ToolRef:      t.toolRef,
					Requested:    t.quantity,
					CurrentTotal: eval.currentTotal,
				},
			}, nil
		}

		outcome.Err = s.writeTuple(ctx, b, t)
		b.results = append(b.results, outcome)
	}

	s.mu.Lock()
	s.selections = nil
	s.pendingBatch = nil
	s.mu.Unlock()
	s.setState(StateIdle)

	s.log.InfoContext(ctx, "check-out batch finished",
		slog.Int("tuples", len(b.results)),
		slog.Int("failed", countFailed(b.results)),
	)

	return &CommitOutcome{Results: b.results, Done: true}, nil
}

// writeTuple performs the two-step check-out write: the in-progress record
// then the corrective exit-log row. The store offers no atomicity across
// the two; a failure after the first write is reported as a partial write.
func (s *Service) writeTuple(ctx context.Context, b *batch, t checkoutTuple) error {
	now := time.Now().UTC()

	rec := domain.InProgressTool{
		ID:          uuid.New(),
		Reference:   t.reference,
		ToolRef:     t.toolRef,
		Location:    t.location,
		PersonName:  b.personName,
		Activity:    domain.ActivityCorrective,
		Quantity:    t.quantity,
		CreatedBy:   b.createdBy,
		OperationAt: now,
	}
	if err := s.inProgress.Create(ctx, rec); err != nil {
		return fmt.Errorf("create in-progress record: %w", err)
	}

	item := domain.HistoryItem{
		ID:          uuid.New(),
		Reference:   t.reference,
		ToolRef:     t.toolRef,
		Location:    t.location,
		PersonName:  b.personName,
		Activity:    domain.ActivityCorrective,
		Quantity:    t.quantity,
		CreatedBy:   b.createdBy,
		OperationAt: now,
	}
	if err := s.history.Create(ctx, item); err != nil {
		s.log.ErrorContext(ctx, "exit log write failed after in-progress record",
			slog.String("reference", t.reference),
			slog.String("tool", t.toolRef),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("create exit log (in-progress record already written): %w", err)
	}

	return nil
}

// writePreventiveMark appends the zero-quantity preventive row recording
// that a maintenance threshold event occurred.
func (s *Service) writePreventiveMark(ctx context.Context, b *batch, t checkoutTuple) error {
	item := domain.HistoryItem{
		ID:          uuid.New(),
		Reference:   t.reference,
		ToolRef:     t.toolRef,
		Location:    t.location,
		PersonName:  b.personName,
		Activity:    domain.ActivityPreventive,
		Quantity:    0,
		CreatedBy:   b.createdBy,
		OperationAt: time.Now().UTC(),
	}
	return s.history.Create(ctx, item)
}

// expandSelections resolves every pending selection into individual
// checkout tuples, in selection order.
func (s *Service) expandSelections(ctx context.Context, selections []domain.Selection) ([]checkoutTuple, error) {
	var out []checkoutTuple
	for _, sel := range selections {
		tuples, _, err := s.resolveTuples(ctx, sel)
		if err != nil {
			return nil, err
		}
		for _, t := range tuples {
			out = append(out, checkoutTuple{
				reference: t.Reference,
				toolRef:   t.ToolRef,
				location:  t.Location,
				quantity:  sel.Quantity,
			})
		}
	}
	return out, nil
}

// takeBatch detaches the pending batch when the workflow is in the given
// state, or returns nil.
func (s *Service) takeBatch(expect State) *batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != expect || s.pendingBatch == nil {
		return nil
	}
	b := s.pendingBatch
	s.pendingBatch = nil
	return b
}

func countFailed(results []TupleOutcome) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
