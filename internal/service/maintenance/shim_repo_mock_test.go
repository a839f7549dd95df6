package maintenance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ shimRepo = &shimRepoMock{}

type shimRepoMock struct {
	ListFunc   func(ctx context.Context, f domain.ShimFilter) ([]domain.ShimRecord, error)
	UpdateFunc func(ctx context.Context, rec domain.ShimRecord) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.ShimFilter
		}
		Update []struct {
			Ctx context.Context
			Rec domain.ShimRecord
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

func (mock *shimRepoMock) List(ctx context.Context, f domain.ShimFilter) ([]domain.ShimRecord, error) {
	if mock.ListFunc == nil {
		panic("shimRepoMock.ListFunc: method is nil but shimRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ShimFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *shimRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ShimFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *shimRepoMock) Update(ctx context.Context, rec domain.ShimRecord) error {
	if mock.UpdateFunc == nil {
		panic("shimRepoMock.UpdateFunc: method is nil but shimRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.ShimRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *shimRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rec domain.ShimRecord
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *shimRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("shimRepoMock.DeleteFunc: method is nil but shimRepo.Delete was just called")
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

func (mock *shimRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
