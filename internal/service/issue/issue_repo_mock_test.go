package issue

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"sync"
)

var _ issueRepo = &issueRepoMock{}

type issueRepoMock struct {
	CountFunc          func(ctx context.Context, f domain.IssueFilter) (int, error)
	CreateFunc         func(ctx context.Context, issue *domain.Issue) error
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Issue, error)
	ListFunc           func(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error)
	LockByIDsFunc      func(ctx context.Context, ids []int64) ([]domain.Issue, error)
	UpdateFunc         func(ctx context.Context, issue *domain.Issue, expectedVersion int) error
	UpdateStatusesFunc func(ctx context.Context, issues []domain.Issue) error

	calls struct {
		Count []struct {
			Ctx context.Context
			F   domain.IssueFilter
		}
		Create []struct {
			Ctx   context.Context
			Issue *domain.Issue
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.IssueFilter
		}
		LockByIDs []struct {
			Ctx context.Context
			Ids []int64
		}
		Update []struct {
			Ctx             context.Context
			Issue           *domain.Issue
			ExpectedVersion int
		}
		UpdateStatuses []struct {
			Ctx    context.Context
			Issues []domain.Issue
		}
	}
	lockCount          sync.RWMutex
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockLockByIDs      sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUpdateStatuses sync.RWMutex
}

func (mock *issueRepoMock) Count(ctx context.Context, f domain.IssueFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("issueRepoMock.CountFunc: method is nil but issueRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.IssueFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *issueRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.IssueFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.IssueFilter
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
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

func (mock *issueRepoMock) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	if mock.GetByIDFunc == nil {
		panic("issueRepoMock.GetByIDFunc: method is nil but issueRepo.GetByID was just called")
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

func (mock *issueRepoMock) GetByIDCalls() []struct {
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

func (mock *issueRepoMock) List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error) {
	if mock.ListFunc == nil {
		panic("issueRepoMock.ListFunc: method is nil but issueRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.IssueFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *issueRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.IssueFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.IssueFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *issueRepoMock) LockByIDs(ctx context.Context, ids []int64) ([]domain.Issue, error) {
	if mock.LockByIDsFunc == nil {
		panic("issueRepoMock.LockByIDsFunc: method is nil but issueRepo.LockByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockLockByIDs.Lock()
	mock.calls.LockByIDs = append(mock.calls.LockByIDs, callInfo)
	mock.lockLockByIDs.Unlock()
	return mock.LockByIDsFunc(ctx, ids)
}

func (mock *issueRepoMock) LockByIDsCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	var calls []struct {
		Ctx context.Context
		Ids []int64
	}
	mock.lockLockByIDs.RLock()
	calls = mock.calls.LockByIDs
	mock.lockLockByIDs.RUnlock()
	return calls
}

func (mock *issueRepoMock) Update(ctx context.Context, issue *domain.Issue, expectedVersion int) error {
	if mock.UpdateFunc == nil {
		panic("issueRepoMock.UpdateFunc: method is nil but issueRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		Issue           *domain.Issue
		ExpectedVersion int
	}{
		Ctx:             ctx,
		Issue:           issue,
		ExpectedVersion: expectedVersion,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, issue, expectedVersion)
}

func (mock *issueRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	Issue           *domain.Issue
	ExpectedVersion int
} {
	var calls []struct {
		Ctx             context.Context
		Issue           *domain.Issue
		ExpectedVersion int
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *issueRepoMock) UpdateStatuses(ctx context.Context, issues []domain.Issue) error {
	if mock.UpdateStatusesFunc == nil {
		panic("issueRepoMock.UpdateStatusesFunc: method is nil but issueRepo.UpdateStatuses was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Issues []domain.Issue
	}{
		Ctx:    ctx,
		Issues: issues,
	}
	mock.lockUpdateStatuses.Lock()
	mock.calls.UpdateStatuses = append(mock.calls.UpdateStatuses, callInfo)
	mock.lockUpdateStatuses.Unlock()
	return mock.UpdateStatusesFunc(ctx, issues)
}

func (mock *issueRepoMock) UpdateStatusesCalls() []struct {
	Ctx    context.Context
	Issues []domain.Issue
} {
	var calls []struct {
		Ctx    context.Context
		Issues []domain.Issue
	}
	mock.lockUpdateStatuses.RLock()
	calls = mock.calls.UpdateStatuses
	mock.lockUpdateStatuses.RUnlock()
	return calls
}
