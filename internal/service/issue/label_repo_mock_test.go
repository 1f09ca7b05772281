package issue

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"sync"
)

var _ labelRepo = &labelRepoMock{}

type labelRepoMock struct {
	GetOrCreateFunc     func(ctx context.Context, names []string) ([]domain.Label, error)
	ListByIssueIDFunc   func(ctx context.Context, issueID int64) ([]domain.Label, error)
	ListByIssueIDsFunc  func(ctx context.Context, issueIDs []int64) (map[int64][]domain.Label, error)
	ReplaceForIssueFunc func(ctx context.Context, issueID int64, labelIDs []int64) error

	calls struct {
		GetOrCreate []struct {
			Ctx   context.Context
			Names []string
		}
		ListByIssueID []struct {
			Ctx     context.Context
			IssueID int64
		}
		ListByIssueIDs []struct {
			Ctx      context.Context
			IssueIDs []int64
		}
		ReplaceForIssue []struct {
			Ctx      context.Context
			IssueID  int64
			LabelIDs []int64
		}
	}
	lockGetOrCreate     sync.RWMutex
	lockListByIssueID   sync.RWMutex
	lockListByIssueIDs  sync.RWMutex
	lockReplaceForIssue sync.RWMutex
}

func (mock *labelRepoMock) GetOrCreate(ctx context.Context, names []string) ([]domain.Label, error) {
	if mock.GetOrCreateFunc == nil {
		panic("labelRepoMock.GetOrCreateFunc: method is nil but labelRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Names []string
	}{
		Ctx:   ctx,
		Names: names,
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, names)
}

func (mock *labelRepoMock) GetOrCreateCalls() []struct {
	Ctx   context.Context
	Names []string
} {
	var calls []struct {
		Ctx   context.Context
		Names []string
	}
	mock.lockGetOrCreate.RLock()
	calls = mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *labelRepoMock) ListByIssueID(ctx context.Context, issueID int64) ([]domain.Label, error) {
	if mock.ListByIssueIDFunc == nil {
		panic("labelRepoMock.ListByIssueIDFunc: method is nil but labelRepo.ListByIssueID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IssueID int64
	}{
		Ctx:     ctx,
		IssueID: issueID,
	}
	mock.lockListByIssueID.Lock()
	mock.calls.ListByIssueID = append(mock.calls.ListByIssueID, callInfo)
	mock.lockListByIssueID.Unlock()
	return mock.ListByIssueIDFunc(ctx, issueID)
}

func (mock *labelRepoMock) ListByIssueIDCalls() []struct {
	Ctx     context.Context
	IssueID int64
} {
	var calls []struct {
		Ctx     context.Context
		IssueID int64
	}
	mock.lockListByIssueID.RLock()
	calls = mock.calls.ListByIssueID
	mock.lockListByIssueID.RUnlock()
	return calls
}

func (mock *labelRepoMock) ListByIssueIDs(ctx context.Context, issueIDs []int64) (map[int64][]domain.Label, error) {
	if mock.ListByIssueIDsFunc == nil {
		panic("labelRepoMock.ListByIssueIDsFunc: method is nil but labelRepo.ListByIssueIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		IssueIDs []int64
	}{
		Ctx:      ctx,
		IssueIDs: issueIDs,
	}
	mock.lockListByIssueIDs.Lock()
	mock.calls.ListByIssueIDs = append(mock.calls.ListByIssueIDs, callInfo)
	mock.lockListByIssueIDs.Unlock()
	return mock.ListByIssueIDsFunc(ctx, issueIDs)
}

func (mock *labelRepoMock) ListByIssueIDsCalls() []struct {
	Ctx      context.Context
	IssueIDs []int64
} {
	var calls []struct {
		Ctx      context.Context
		IssueIDs []int64
	}
	mock.lockListByIssueIDs.RLock()
	calls = mock.calls.ListByIssueIDs
	mock.lockListByIssueIDs.RUnlock()
	return calls
}

func (mock *labelRepoMock) ReplaceForIssue(ctx context.Context, issueID int64, labelIDs []int64) error {
	if mock.ReplaceForIssueFunc == nil {
		panic("labelRepoMock.ReplaceForIssueFunc: method is nil but labelRepo.ReplaceForIssue was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		IssueID  int64
		LabelIDs []int64
	}{
		Ctx:      ctx,
		IssueID:  issueID,
		LabelIDs: labelIDs,
	}
	mock.lockReplaceForIssue.Lock()
	mock.calls.ReplaceForIssue = append(mock.calls.ReplaceForIssue, callInfo)
	mock.lockReplaceForIssue.Unlock()
	return mock.ReplaceForIssueFunc(ctx, issueID, labelIDs)
}

func (mock *labelRepoMock) ReplaceForIssueCalls() []struct {
	Ctx      context.Context
	IssueID  int64
	LabelIDs []int64
} {
	var calls []struct {
		Ctx      context.Context
		IssueID  int64
		LabelIDs []int64
	}
	mock.lockReplaceForIssue.RLock()
	calls = mock.calls.ReplaceForIssue
	mock.lockReplaceForIssue.RUnlock()
	return calls
}
