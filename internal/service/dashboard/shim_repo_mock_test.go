package dashboard

import (
	"context"
	"sync"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ shimRepo = &shimRepoMock{}

type shimRepoMock struct {
	FindFunc   func(ctx context.Context, assise, axe string) (*domain.ShimRecord, error)
	CreateFunc func(ctx context.Context, rec domain.ShimRecord) error

	calls struct {
		Find []struct {
			Ctx    context.Context
			Assise string
			Axe    string
		}
		Create []struct {
			Ctx context.Context
			Rec domain.ShimRecord
		}
	}
	lockFind   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *shimRepoMock) Find(ctx context.Context, assise, axe string) (*domain.ShimRecord, error) {
	if mock.FindFunc == nil {
		panic("shimRepoMock.FindFunc: method is nil but shimRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Assise string
		Axe    string
	}{Ctx: ctx, Assise: assise, Axe: axe}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, assise, axe)
}

func (mock *shimRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Assise string
	Axe    string
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *shimRepoMock) Create(ctx context.Context, rec domain.ShimRecord) error {
	if mock.CreateFunc == nil {
		panic("shimRepoMock.CreateFunc: method is nil but shimRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.ShimRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *shimRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.ShimRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
