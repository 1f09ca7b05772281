package report

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"sync"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	LatencyFunc      func(ctx context.Context) (domain.LatencyReport, error)
	TopAssigneesFunc func(ctx context.Context, limit int) ([]domain.AssigneeCount, error)

	calls struct {
		Latency []struct {
			Ctx context.Context
		}
		TopAssignees []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockLatency      sync.RWMutex
	lockTopAssignees sync.RWMutex
}

func (mock *reportRepoMock) Latency(ctx context.Context) (domain.LatencyReport, error) {
	if mock.LatencyFunc == nil {
		panic("reportRepoMock.LatencyFunc: method is nil but reportRepo.Latency was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLatency.Lock()
	mock.calls.Latency = append(mock.calls.Latency, callInfo)
	mock.lockLatency.Unlock()
	return mock.LatencyFunc(ctx)
}

func (mock *reportRepoMock) LatencyCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockLatency.RLock()
	calls = mock.calls.Latency
	mock.lockLatency.RUnlock()
	return calls
}

func (mock *reportRepoMock) TopAssignees(ctx context.Context, limit int) ([]domain.AssigneeCount, error) {
	if mock.TopAssigneesFunc == nil {
		panic("reportRepoMock.TopAssigneesFunc: method is nil but reportRepo.TopAssignees was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockTopAssignees.Lock()
	mock.calls.TopAssignees = append(mock.calls.TopAssignees, callInfo)
	mock.lockTopAssignees.Unlock()
	return mock.TopAssigneesFunc(ctx, limit)
}

func (mock *reportRepoMock) TopAssigneesCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockTopAssignees.RLock()
	calls = mock.calls.TopAssignees
	mock.lockTopAssignees.RUnlock()
	return calls
}
