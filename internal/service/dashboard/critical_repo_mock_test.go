package dashboard

import (
	"context"
	"sync"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ criticalRepo = &criticalRepoMock{}

type criticalRepoMock struct {
	FindByToolRefsFunc func(ctx context.Context, refs []string) ([]domain.CriticalTool, error)

	calls struct {
		FindByToolRefs []struct {
			Ctx  context.Context
			Refs []string
		}
	}
	lockFindByToolRefs sync.RWMutex
}

func (mock *criticalRepoMock) FindByToolRefs(ctx context.Context, refs []string) ([]domain.CriticalTool, error) {
	if mock.FindByToolRefsFunc == nil {
		panic("criticalRepoMock.FindByToolRefsFunc: method is nil but criticalRepo.FindByToolRefs was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Refs []string
	}{Ctx: ctx, Refs: refs}
	mock.lockFindByToolRefs.Lock()
	mock.calls.FindByToolRefs = append(mock.calls.FindByToolRefs, callInfo)
	mock.lockFindByToolRefs.Unlock()
	return mock.FindByToolRefsFunc(ctx, refs)
}

func (mock *criticalRepoMock) FindByToolRefsCalls() []struct {
	Ctx  context.Context
	Refs []string
} {
	mock.lockFindByToolRefs.RLock()
	calls := mock.calls.FindByToolRefs
	mock.lockFindByToolRefs.RUnlock()
	return calls
}
