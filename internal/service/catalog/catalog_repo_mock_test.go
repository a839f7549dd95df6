package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	SearchPattesFunc           func(ctx context.Context, term string) ([]domain.PatteTool, error)
	SearchCoupellesFunc        func(ctx context.Context, term string) ([]domain.CoupelleTool, error)
	PatteByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.PatteTool, error)
	CoupelleByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.CoupelleTool, error)
	PattesUsingLocationFunc    func(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.PatteTool, error)
	CoupellesUsingLocationFunc func(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.CoupelleTool, error)
	CreatePatteFunc            func(ctx context.Context, p domain.PatteTool) (*domain.PatteTool, error)
	UpdatePatteFunc            func(ctx context.Context, p domain.PatteTool) error
	DeletePatteFunc            func(ctx context.Context, id uuid.UUID) error
	CreateCoupelleFunc         func(ctx context.Context, c domain.CoupelleTool) (*domain.CoupelleTool, error)
	UpdateCoupelleFunc         func(ctx context.Context, c domain.CoupelleTool) error
	DeleteCoupelleFunc         func(ctx context.Context, id uuid.UUID) error

	calls struct {
		SearchPattes []struct {
			Ctx  context.Context
			Term string
		}
		SearchCoupelles []struct {
			Ctx  context.Context
			Term string
		}
		PatteByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CoupelleByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		PattesUsingLocation []struct {
			Ctx       context.Context
			Location  string
			ExcludeID uuid.UUID
		}
		CoupellesUsingLocation []struct {
			Ctx       context.Context
			Location  string
			ExcludeID uuid.UUID
		}
		CreatePatte []struct {
			Ctx context.Context
			P   domain.PatteTool
		}
		UpdatePatte []struct {
			Ctx context.Context
			P   domain.PatteTool
		}
		DeletePatte []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateCoupelle []struct {
			Ctx context.Context
			C   domain.CoupelleTool
		}
		UpdateCoupelle []struct {
			Ctx context.Context
			C   domain.CoupelleTool
		}
		DeleteCoupelle []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockSearchPattes           sync.RWMutex
	lockSearchCoupelles        sync.RWMutex
	lockPatteByID              sync.RWMutex
	lockCoupelleByID           sync.RWMutex
	lockPattesUsingLocation    sync.RWMutex
	lockCoupellesUsingLocation sync.RWMutex
	lockCreatePatte            sync.RWMutex
	lockUpdatePatte            sync.RWMutex
	lockDeletePatte            sync.RWMutex
	lockCreateCoupelle         sync.RWMutex
	lockUpdateCoupelle         sync.RWMutex
	lockDeleteCoupelle         sync.RWMutex
}

func (mock *catalogRepoMock) SearchPattes(ctx context.Context, term string) ([]domain.PatteTool, error) {
	if mock.SearchPattesFunc == nil {
		panic("catalogRepoMock.SearchPattesFunc: method is nil but catalogRepo.SearchPattes was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockSearchPattes.Lock()
	mock.calls.SearchPattes = append(mock.calls.SearchPattes, callInfo)
	mock.lockSearchPattes.Unlock()
	return mock.SearchPattesFunc(ctx, term)
}

func (mock *catalogRepoMock) SearchPattesCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearchPattes.RLock()
	calls := mock.calls.SearchPattes
	mock.lockSearchPattes.RUnlock()
	return calls
}

func (mock *catalogRepoMock) SearchCoupelles(ctx context.Context, term string) ([]domain.CoupelleTool, error) {
	if mock.SearchCoupellesFunc == nil {
		panic("catalogRepoMock.SearchCoupellesFunc: method is nil but catalogRepo.SearchCoupelles was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockSearchCoupelles.Lock()
	mock.calls.SearchCoupelles = append(mock.calls.SearchCoupelles, callInfo)
	mock.lockSearchCoupelles.Unlock()
	return mock.SearchCoupellesFunc(ctx, term)
}

func (mock *catalogRepoMock) SearchCoupellesCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearchCoupelles.RLock()
	calls := mock.calls.SearchCoupelles
	mock.lockSearchCoupelles.RUnlock()
	return calls
}

func (mock *catalogRepoMock) PatteByID(ctx context.Context, id uuid.UUID) (*domain.PatteTool, error) {
	if mock.PatteByIDFunc == nil {
		panic("catalogRepoMock.PatteByIDFunc: method is nil but catalogRepo.PatteByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockPatteByID.Lock()
	mock.calls.PatteByID = append(mock.calls.PatteByID, callInfo)
	mock.lockPatteByID.Unlock()
	return mock.PatteByIDFunc(ctx, id)
}

func (mock *catalogRepoMock) PatteByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockPatteByID.RLock()
	calls := mock.calls.PatteByID
	mock.lockPatteByID.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CoupelleByID(ctx context.Context, id uuid.UUID) (*domain.CoupelleTool, error) {
	if mock.CoupelleByIDFunc == nil {
		panic("catalogRepoMock.CoupelleByIDFunc: method is nil but catalogRepo.CoupelleByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockCoupelleByID.Lock()
	mock.calls.CoupelleByID = append(mock.calls.CoupelleByID, callInfo)
	mock.lockCoupelleByID.Unlock()
	return mock.CoupelleByIDFunc(ctx, id)
}

func (mock *catalogRepoMock) CoupelleByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockCoupelleByID.RLock()
	calls := mock.calls.CoupelleByID
	mock.lockCoupelleByID.RUnlock()
	return calls
}

func (mock *catalogRepoMock) PattesUsingLocation(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.PatteTool, error) {
	if mock.PattesUsingLocationFunc == nil {
		panic("catalogRepoMock.PattesUsingLocationFunc: method is nil but catalogRepo.PattesUsingLocation was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Location  string
		ExcludeID uuid.UUID
	}{Ctx: ctx, Location: location, ExcludeID: excludeID}
	mock.lockPattesUsingLocation.Lock()
	mock.calls.PattesUsingLocation = append(mock.calls.PattesUsingLocation, callInfo)
	mock.lockPattesUsingLocation.Unlock()
	return mock.PattesUsingLocationFunc(ctx, location, excludeID)
}

func (mock *catalogRepoMock) PattesUsingLocationCalls() []struct {
	Ctx       context.Context
	Location  string
	ExcludeID uuid.UUID
} {
	mock.lockPattesUsingLocation.RLock()
	calls := mock.calls.PattesUsingLocation
	mock.lockPattesUsingLocation.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CoupellesUsingLocation(ctx context.Context, location string, excludeID uuid.UUID) ([]domain.CoupelleTool, error) {
	if mock.CoupellesUsingLocationFunc == nil {
		panic("catalogRepoMock.CoupellesUsingLocationFunc: method is nil but catalogRepo.CoupellesUsingLocation was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Location  string
		ExcludeID uuid.UUID
	}{Ctx: ctx, Location: location, ExcludeID: excludeID}
	mock.lockCoupellesUsingLocation.Lock()
	mock.calls.CoupellesUsingLocation = append(mock.calls.CoupellesUsingLocation, callInfo)
	mock.lockCoupellesUsingLocation.Unlock()
	return mock.CoupellesUsingLocationFunc(ctx, location, excludeID)
}

func (mock *catalogRepoMock) CoupellesUsingLocationCalls() []struct {
	Ctx       context.Context
	Location  string
	ExcludeID uuid.UUID
} {
	mock.lockCoupellesUsingLocation.RLock()
	calls := mock.calls.CoupellesUsingLocation
	mock.lockCoupellesUsingLocation.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CreatePatte(ctx context.Context, p domain.PatteTool) (*domain.PatteTool, error) {
	if mock.CreatePatteFunc == nil {
		panic("catalogRepoMock.CreatePatteFunc: method is nil but catalogRepo.CreatePatte was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.PatteTool
	}{Ctx: ctx, P: p}
	mock.lockCreatePatte.Lock()
	mock.calls.CreatePatte = append(mock.calls.CreatePatte, callInfo)
	mock.lockCreatePatte.Unlock()
	return mock.CreatePatteFunc(ctx, p)
}

func (mock *catalogRepoMock) CreatePatteCalls() []struct {
	Ctx context.Context
	P   domain.PatteTool
} {
	mock.lockCreatePatte.RLock()
	calls := mock.calls.CreatePatte
	mock.lockCreatePatte.RUnlock()
	return calls
}

func (mock *catalogRepoMock) UpdatePatte(ctx context.Context, p domain.PatteTool) error {
	if mock.UpdatePatteFunc == nil {
		panic("catalogRepoMock.UpdatePatteFunc: method is nil but catalogRepo.UpdatePatte was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.PatteTool
	}{Ctx: ctx, P: p}
	mock.lockUpdatePatte.Lock()
	mock.calls.UpdatePatte = append(mock.calls.UpdatePatte, callInfo)
	mock.lockUpdatePatte.Unlock()
	return mock.UpdatePatteFunc(ctx, p)
}

func (mock *catalogRepoMock) UpdatePatteCalls() []struct {
	Ctx context.Context
	P   domain.PatteTool
} {
	mock.lockUpdatePatte.RLock()
	calls := mock.calls.UpdatePatte
	mock.lockUpdatePatte.RUnlock()
	return calls
}

func (mock *catalogRepoMock) DeletePatte(ctx context.Context, id uuid.UUID) error {
	if mock.DeletePatteFunc == nil {
		panic("catalogRepoMock.DeletePatteFunc: method is nil but catalogRepo.DeletePatte was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeletePatte.Lock()
	mock.calls.DeletePatte = append(mock.calls.DeletePatte, callInfo)
	mock.lockDeletePatte.Unlock()
	return mock.DeletePatteFunc(ctx, id)
}

func (mock *catalogRepoMock) DeletePatteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeletePatte.RLock()
	calls := mock.calls.DeletePatte
	mock.lockDeletePatte.RUnlock()
	return calls
}

func (mock *catalogRepoMock) CreateCoupelle(ctx context.Context, c domain.CoupelleTool) (*domain.CoupelleTool, error) {
	if mock.CreateCoupelleFunc == nil {
		panic("catalogRepoMock.CreateCoupelleFunc: method is nil but catalogRepo.CreateCoupelle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.CoupelleTool
	}{Ctx: ctx, C: c}
	mock.lockCreateCoupelle.Lock()
	mock.calls.CreateCoupelle = append(mock.calls.CreateCoupelle, callInfo)
	mock.lockCreateCoupelle.Unlock()
	return mock.CreateCoupelleFunc(ctx, c)
}

func (mock *catalogRepoMock) CreateCoupelleCalls() []struct {
	Ctx context.Context
	C   domain.CoupelleTool
} {
	mock.lockCreateCoupelle.RLock()
	calls := mock.calls.CreateCoupelle
	mock.lockCreateCoupelle.RUnlock()
	return calls
}

func (mock *catalogRepoMock) UpdateCoupelle(ctx context.Context, c domain.CoupelleTool) error {
	if mock.UpdateCoupelleFunc == nil {
		panic("catalogRepoMock.UpdateCoupelleFunc: method is nil but catalogRepo.UpdateCoupelle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.CoupelleTool
	}{Ctx: ctx, C: c}
	mock.lockUpdateCoupelle.Lock()
	mock.calls.UpdateCoupelle = append(mock.calls.UpdateCoupelle, callInfo)
	mock.lockUpdateCoupelle.Unlock()
	return mock.UpdateCoupelleFunc(ctx, c)
}

func (mock *catalogRepoMock) UpdateCoupelleCalls() []struct {
	Ctx context.Context
	C   domain.CoupelleTool
} {
	mock.lockUpdateCoupelle.RLock()
	calls := mock.calls.UpdateCoupelle
	mock.lockUpdateCoupelle.RUnlock()
	return calls
}

func (mock *catalogRepoMock) DeleteCoupelle(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCoupelleFunc == nil {
		panic("catalogRepoMock.DeleteCoupelleFunc: method is nil but catalogRepo.DeleteCoupelle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCoupelle.Lock()
	mock.calls.DeleteCoupelle = append(mock.calls.DeleteCoupelle, callInfo)
	mock.lockDeleteCoupelle.Unlock()
	return mock.DeleteCoupelleFunc(ctx, id)
}

func (mock *catalogRepoMock) DeleteCoupelleCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteCoupelle.RLock()
	calls := mock.calls.DeleteCoupelle
	mock.lockDeleteCoupelle.RUnlock()
	return calls
}
