package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// SelectForCheckin loads the in-progress record targeted for a check-in.
// No availability check applies; the record's existence is the selection.
func (s *Service) SelectForCheckin(ctx context.Context, id uuid.UUID) (*domain.InProgressTool, error) {
	rec, err := s.inProgress.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get in-progress record: %w", err)
	}
	return rec, nil
}

// ConfirmCheckin commits a check-in once all three preparatory steps
// (inspect, clean, restock) are acknowledged: the in-progress record is
// deleted and one entry-log row is inserted. The store offers no
// atomicity across the two steps; a failure after the delete is reported
// as a partial write.
func (s *Service) ConfirmCheckin(ctx context.Context, input CheckinInput) (*CheckinResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.inProgress.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get in-progress record: %w", err)
	}

	if err := s.inProgress.Delete(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("delete in-progress record: %w", err)
	}

	quantity := rec.Quantity
	if quantity < 1 {
		quantity = 1
	}
	entry := domain.EntryHistoryItem{
		ID:          uuid.New(),
		Reference:   rec.Reference,
		ToolRef:     rec.ToolRef,
		Location:    rec.Location,
		PersonName:  rec.PersonName,
		Quantity:    quantity,
		CreatedBy:   userID,
		OperationAt: time.Now().UTC(),
	}
	if err := s.entryLog.Create(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "entry log write failed after in-progress delete",
			slog.String("reference", rec.Reference),
			slog.String("tool", rec.ToolRef),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create entry log (in-progress record already deleted): %w", err)
	}

	s.log.InfoContext(ctx, "tool checked in",
		slog.String("reference", rec.Reference),
		slog.String("tool", rec.ToolRef),
		slog.Int("quantity", quantity),
	)

	return &CheckinResult{Entry: entry}, nil
}
