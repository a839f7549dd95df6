package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ entryLogRepo = &entryLogRepoMock{}

type entryLogRepoMock struct {
	CreateFunc  func(ctx context.Context, item domain.EntryHistoryItem) error
	ListDayFunc func(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item domain.EntryHistoryItem
		}
		ListDay []struct {
			Ctx context.Context
			Day time.Time
		}
	}
	lockCreate  sync.RWMutex
	lockListDay sync.RWMutex
}

func (mock *entryLogRepoMock) Create(ctx context.Context, item domain.EntryHistoryItem) error {
	if mock.CreateFunc == nil {
		panic("entryLogRepoMock.CreateFunc: method is nil but entryLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.EntryHistoryItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *entryLogRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.EntryHistoryItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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
