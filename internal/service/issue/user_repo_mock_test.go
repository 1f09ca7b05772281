package issue

import (
	"context"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ExistsFunc func(ctx context.Context, id int64) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockExists sync.RWMutex
}

func (mock *userRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("userRepoMock.ExistsFunc: method is nil but userRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *userRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
