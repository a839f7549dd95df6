package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// TodayHistory returns the exit-log rows for the given day, most recent
// first.
func (s *Service) TodayHistory(ctx context.Context, day time.Time) ([]domain.HistoryItem, error) {
	items, err := s.history.ListDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list day exit log: %w", err)
	}
	return items, nil
}

// TodayEntryHistory returns the entry-log rows for the given day, most
// recent first.
func (s *Service) TodayEntryHistory(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error) {
	items, err := s.entryLog.ListDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list day entry log: %w", err)
	}
	return items, nil
}

// InProgress returns every tool currently checked out.
func (s *Service) InProgress(ctx context.Context) ([]domain.InProgressTool, error) {
	items, err := s.inProgress.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list in-progress: %w", err)
	}
	return items, nil
}
