package maintenance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ entryLogRepo = &entryLogRepoMock{}

type entryLogRepoMock struct {
	ListDayFunc func(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListDay []struct {
			Ctx context.Context
			Day time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListDay sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *entryLogRepoMock) ListDay(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error) {
	if mock.ListDayFunc == nil {
		panic("entryLogRepoMock.ListDayFunc: method is nil but entryLogRepo.ListDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day time.Time
	}{Ctx: ctx, Day: day}
	mock.lockListDay.Lock()
	mock.calls.ListDay = append(mock.calls.ListDay, callInfo)
	mock.lockListDay.Unlock()
	return mock.ListDayFunc(ctx, day)
}

func (mock *entryLogRepoMock) ListDayCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockListDay.RLock()
	calls := mock.calls.ListDay
	mock.lockListDay.RUnlock()
	return calls
}

func (mock *entryLogRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryLogRepoMock.DeleteFunc: method is nil but entryLogRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryLogRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
