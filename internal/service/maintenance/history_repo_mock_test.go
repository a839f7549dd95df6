package maintenance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	ListFunc   func(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryItem, error)
	UpdateFunc func(ctx context.Context, item domain.HistoryItem) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.HistoryFilter
		}
		Update []struct {
			Ctx  context.Context
			Item domain.HistoryItem
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *historyRepoMock) List(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryItem, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.HistoryFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.HistoryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *historyRepoMock) Update(ctx context.Context, item domain.HistoryItem) error {
	if mock.UpdateFunc == nil {
		panic("historyRepoMock.UpdateFunc: method is nil but historyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.HistoryItem
	}{Ctx: ctx, Item: item}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *historyRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Item domain.HistoryItem
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *historyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("historyRepoMock.DeleteFunc: method is nil but historyRepo.Delete was just called")
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

func (mock *historyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
