package user

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc  func(ctx context.Context, name string, email string) (*domain.User, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Name  string
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, name string, email string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Name  string
		Email string
	}{
		Ctx:   ctx,
		Name:  name,
		Email: email,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name, email)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Name  string
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Name  string
		Email string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
