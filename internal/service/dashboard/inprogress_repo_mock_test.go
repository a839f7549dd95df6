package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ inProgressRepo = &inProgressRepoMock{}

type inProgressRepoMock struct {
	ExistsFunc  func(ctx context.Context, reference, toolRef string) (bool, error)
	CreateFunc  func(ctx context.Context, rec domain.InProgressTool) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.InProgressTool, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ListFunc    func(ctx context.Context) ([]domain.InProgressTool, error)

	calls struct {
		Exists []struct {
			Ctx       context.Context
			Reference string
			ToolRef   string
		}
		Create []struct {
			Ctx context.Context
			Rec domain.InProgressTool
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockExists  sync.RWMutex
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *inProgressRepoMock) Exists(ctx context.Context, reference, toolRef string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("inProgressRepoMock.ExistsFunc: method is nil but inProgressRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Reference string
		ToolRef   string
	}{Ctx: ctx, Reference: reference, ToolRef: toolRef}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, reference, toolRef)
}

func (mock *inProgressRepoMock) ExistsCalls() []struct {
	Ctx       context.Context
	Reference string
	ToolRef   string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *inProgressRepoMock) Create(ctx context.Context, rec domain.InProgressTool) error {
	if mock.CreateFunc == nil {
		panic("inProgressRepoMock.CreateFunc: method is nil but inProgressRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.InProgressTool
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *inProgressRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.InProgressTool
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inProgressRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InProgressTool, error) {
	if mock.GetByIDFunc == nil {
		panic("inProgressRepoMock.GetByIDFunc: method is nil but inProgressRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *inProgressRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inProgressRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("inProgressRepoMock.DeleteFunc: method is nil but inProgressRepo.Delete was just called")
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

func (mock *inProgressRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *inProgressRepoMock) List(ctx context.Context) ([]domain.InProgressTool, error) {
	if mock.ListFunc == nil {
		panic("inProgressRepoMock.ListFunc: method is nil but inProgressRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *inProgressRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
