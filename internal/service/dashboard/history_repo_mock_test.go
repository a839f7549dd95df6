package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc                func(ctx context.Context, item domain.HistoryItem) error
	LastQuantityFunc          func(ctx context.Context, reference, toolRef string) (int, error)
	ListDayFunc               func(ctx context.Context, day time.Time) ([]domain.HistoryItem, error)
	ReferencesWithHistoryFunc func(ctx context.Context, refs []string) ([]string, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item domain.HistoryItem
		}
		LastQuantity []struct {
			Ctx       context.Context
			Reference string
			ToolRef   string
		}
		ListDay []struct {
			Ctx context.Context
			Day time.Time
		}
		ReferencesWithHistory []struct {
			Ctx  context.Context
			Refs []string
		}
	}
	lockCreate                sync.RWMutex
	lockLastQuantity          sync.RWMutex
	lockListDay               sync.RWMutex
	lockReferencesWithHistory sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, item domain.HistoryItem) error {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.HistoryItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.HistoryItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *historyRepoMock) LastQuantity(ctx context.Context, reference, toolRef string) (int, error) {
	if mock.LastQuantityFunc == nil {
		panic("historyRepoMock.LastQuantityFunc: method is nil but historyRepo.LastQuantity was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Reference string
		ToolRef   string
	}{Ctx: ctx, Reference: reference, ToolRef: toolRef}
	mock.lockLastQuantity.Lock()
	mock.calls.LastQuantity = append(mock.calls.LastQuantity, callInfo)
	mock.lockLastQuantity.Unlock()
	return mock.LastQuantityFunc(ctx, reference, toolRef)
}

func (mock *historyRepoMock) LastQuantityCalls() []struct {
	Ctx       context.Context
	Reference string
	ToolRef   string
} {
	mock.lockLastQuantity.RLock()
	calls := mock.calls.LastQuantity
	mock.lockLastQuantity.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListDay(ctx context.Context, day time.Time) ([]domain.HistoryItem, error) {
	if mock.ListDayFunc == nil {
		panic("historyRepoMock.ListDayFunc: method is nil but historyRepo.ListDay was just called")
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

func (mock *historyRepoMock) ListDayCalls() []struct {
	Ctx context.Context
	Day time.Time
} {
	mock.lockListDay.RLock()
	calls := mock.calls.ListDay
	mock.lockListDay.RUnlock()
	return calls
}

func (mock *historyRepoMock) ReferencesWithHistory(ctx context.Context, refs []string) ([]string, error) {
	if mock.ReferencesWithHistoryFunc == nil {
		panic("historyRepoMock.ReferencesWithHistoryFunc: method is nil but historyRepo.ReferencesWithHistory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Refs []string
	}{Ctx: ctx, Refs: refs}
	mock.lockReferencesWithHistory.Lock()
	mock.calls.ReferencesWithHistory = append(mock.calls.ReferencesWithHistory, callInfo)
	mock.lockReferencesWithHistory.Unlock()
	return mock.ReferencesWithHistoryFunc(ctx, refs)
}

func (mock *historyRepoMock) ReferencesWithHistoryCalls() []struct {
	Ctx  context.Context
	Refs []string
} {
	mock.lockReferencesWithHistory.RLock()
	calls := mock.calls.ReferencesWithHistory
	mock.lockReferencesWithHistory.RUnlock()
	return calls
}
