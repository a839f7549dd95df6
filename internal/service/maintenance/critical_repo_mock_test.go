package maintenance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ criticalRepo = &criticalRepoMock{}

type criticalRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.CriticalTool, error)
	CreateFunc func(ctx context.Context, tool domain.CriticalTool) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx  context.Context
			Tool domain.CriticalTool
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *criticalRepoMock) List(ctx context.Context) ([]domain.CriticalTool, error) {
	if mock.ListFunc == nil {
		panic("criticalRepoMock.ListFunc: method is nil but criticalRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *criticalRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *criticalRepoMock) Create(ctx context.Context, tool domain.CriticalTool) error {
	if mock.CreateFunc == nil {
		panic("criticalRepoMock.CreateFunc: method is nil but criticalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Tool domain.CriticalTool
	}{Ctx: ctx, Tool: tool}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tool)
}

func (mock *criticalRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Tool domain.CriticalTool
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *criticalRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("criticalRepoMock.DeleteFunc: method is nil but criticalRepo.Delete was just called")
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

func (mock *criticalRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
