package importer

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"sync"
)

var _ issueRepo = &issueRepoMock{}

type issueRepoMock struct {
	CreateFunc func(ctx context.Context, issue *domain.Issue) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Issue *domain.Issue
		}
	}
	lockCreate sync.RWMutex
}

func (mock *issueRepoMock) Create(ctx context.Context, issue *domain.Issue) error {
	if mock.CreateFunc == nil {
		panic("issueRepoMock.CreateFunc: method is nil but issueRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Issue *domain.Issue
	}{
		Ctx:   ctx,
		Issue: issue,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, issue)
}

func (mock *issueRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Issue *domain.Issue
} {
	var calls []struct {
		Ctx   context.Context
		Issue *domain.Issue
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
