package rest

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"github.com/heartmarshall/issuetracker-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	CreateUserFunc func(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	GetUserFunc    func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		CreateUser []struct {
			Ctx   context.Context
			Input user.CreateUserInput
		}
		GetUser []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreateUser sync.RWMutex
	lockGetUser    sync.RWMutex
}

func (mock *userServiceMock) CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userServiceMock.CreateUserFunc: method is nil but userService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, input)
}

func (mock *userServiceMock) CreateUserCalls() []struct {
	Ctx   context.Context
	Input user.CreateUserInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}
	mock.lockCreateUser.RLock()
	calls = mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but userService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *userServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetUser.RLock()
	calls = mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}
