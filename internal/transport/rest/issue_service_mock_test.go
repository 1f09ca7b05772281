package rest

import (
	"context"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"github.com/heartmarshall/issuetracker-backend/internal/service/issue"
	"sync"
)

var _ issueService = &issueServiceMock{}

type issueServiceMock struct {
	AddCommentFunc       func(ctx context.Context, input issue.AddCommentInput) (*domain.Comment, error)
	BulkUpdateStatusFunc func(ctx context.Context, input issue.BulkStatusInput) (int, error)
	CreateIssueFunc      func(ctx context.Context, input issue.CreateIssueInput) (*domain.Issue, error)
	GetIssueFunc         func(ctx context.Context, id int64) (*domain.Issue, error)
	ListIssuesFunc       func(ctx context.Context, input issue.ListIssuesInput) (*domain.IssuePage, error)
	ReplaceLabelsFunc    func(ctx context.Context, input issue.ReplaceLabelsInput) (*domain.Issue, error)
	TimelineFunc         func(ctx context.Context, issueID int64) ([]domain.IssueEvent, error)
	UpdateIssueFunc      func(ctx context.Context, input issue.UpdateIssueInput) (*domain.Issue, error)

	calls struct {
		AddComment []struct {
			Ctx   context.Context
			Input issue.AddCommentInput
		}
		BulkUpdateStatus []struct {
			Ctx   context.Context
			Input issue.BulkStatusInput
		}
		CreateIssue []struct {
			Ctx   context.Context
			Input issue.CreateIssueInput
		}
		GetIssue []struct {
			Ctx context.Context
			ID  int64
		}
		ListIssues []struct {
			Ctx   context.Context
			Input issue.ListIssuesInput
		}
		ReplaceLabels []struct {
			Ctx   context.Context
			Input issue.ReplaceLabelsInput
		}
		Timeline []struct {
			Ctx     context.Context
			IssueID int64
		}
		UpdateIssue []struct {
			Ctx   context.Context
			Input issue.UpdateIssueInput
		}
	}
	lockAddComment       sync.RWMutex
	lockBulkUpdateStatus sync.RWMutex
	lockCreateIssue      sync.RWMutex
	lockGetIssue         sync.RWMutex
	lockListIssues       sync.RWMutex
	lockReplaceLabels    sync.RWMutex
	lockTimeline         sync.RWMutex
	lockUpdateIssue      sync.RWMutex
}

func (mock *issueServiceMock) AddComment(ctx context.Context, input issue.AddCommentInput) (*domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("issueServiceMock.AddCommentFunc: method is nil but issueService.AddComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.AddCommentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, input)
}

func (mock *issueServiceMock) AddCommentCalls() []struct {
	Ctx   context.Context
	Input issue.AddCommentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input issue.AddCommentInput
	}
	mock.lockAddComment.RLock()
	calls = mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *issueServiceMock) BulkUpdateStatus(ctx context.Context, input issue.BulkStatusInput) (int, error) {
	if mock.BulkUpdateStatusFunc == nil {
		panic("issueServiceMock.BulkUpdateStatusFunc: method is nil but issueService.BulkUpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.BulkStatusInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockBulkUpdateStatus.Lock()
	mock.calls.BulkUpdateStatus = append(mock.calls.BulkUpdateStatus, callInfo)
	mock.lockBulkUpdateStatus.Unlock()
	return mock.BulkUpdateStatusFunc(ctx, input)
}

func (mock *issueServiceMock) BulkUpdateStatusCalls() []struct {
	Ctx   context.Context
	Input issue.BulkStatusInput
} {
	var calls []struct {
		Ctx   context.Context
		Input issue.BulkStatusInput
	}
	mock.lockBulkUpdateStatus.RLock()
	calls = mock.calls.BulkUpdateStatus
	mock.lockBulkUpdateStatus.RUnlock()
	return calls
}

func (mock *issueServiceMock) CreateIssue(ctx context.Context, input issue.CreateIssueInput) (*domain.Issue, error) {
	if mock.CreateIssueFunc == nil {
		panic("issueServiceMock.CreateIssueFunc: method is nil but issueService.CreateIssue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.CreateIssueInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateIssue.Lock()
	mock.calls.CreateIssue = append(mock.calls.CreateIssue, callInfo)
	mock.lockCreateIssue.Unlock()
	return mock.CreateIssueFunc(ctx, input)
}

func (mock *issueServiceMock) CreateIssueCalls() []struct {
	Ctx   context.Context
	Input issue.CreateIssueInput
} {
	var calls []struct {
		Ctx   context.Context
		Input issue.CreateIssueInput
	}
	mock.lockCreateIssue.RLock()
	calls = mock.calls.CreateIssue
	mock.lockCreateIssue.RUnlock()
	return calls
}

func (mock *issueServiceMock) GetIssue(ctx context.Context, id int64) (*domain.Issue, error) {
	if mock.GetIssueFunc == nil {
		panic("issueServiceMock.GetIssueFunc: method is nil but issueService.GetIssue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetIssue.Lock()
	mock.calls.GetIssue = append(mock.calls.GetIssue, callInfo)
	mock.lockGetIssue.Unlock()
	return mock.GetIssueFunc(ctx, id)
}

func (mock *issueServiceMock) GetIssueCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetIssue.RLock()
	calls = mock.calls.GetIssue
	mock.lockGetIssue.RUnlock()
	return calls
}

func (mock *issueServiceMock) ListIssues(ctx context.Context, input issue.ListIssuesInput) (*domain.IssuePage, error) {
	if mock.ListIssuesFunc == nil {
		panic("issueServiceMock.ListIssuesFunc: method is nil but issueService.ListIssues was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.ListIssuesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListIssues.Lock()
	mock.calls.ListIssues = append(mock.calls.ListIssues, callInfo)
	mock.lockListIssues.Unlock()
	return mock.ListIssuesFunc(ctx, input)
}

func (mock *issueServiceMock) ListIssuesCalls() []struct {
	Ctx   context.Context
	Input issue.ListIssuesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input issue.ListIssuesInput
	}
	mock.lockListIssues.RLock()
	calls = mock.calls.ListIssues
	mock.lockListIssues.RUnlock()
	return calls
}

func (mock *issueServiceMock) ReplaceLabels(ctx context.Context, input issue.ReplaceLabelsInput) (*domain.Issue, error) {
	if mock.ReplaceLabelsFunc == nil {
		panic("issueServiceMock.ReplaceLabelsFunc: method is nil but issueService.ReplaceLabels was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.ReplaceLabelsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReplaceLabels.Lock()
	mock.calls.ReplaceLabels = append(mock.calls.ReplaceLabels, callInfo)
	mock.lockReplaceLabels.Unlock()
	return mock.ReplaceLabelsFunc(ctx, input)
}

func (mock *issueServiceMock) ReplaceLabelsCalls() []struct {
	Ctx   context.Context
	Input issue.ReplaceLabelsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input issue.ReplaceLabelsInput
	}
	mock.lockReplaceLabels.RLock()
	calls = mock.calls.ReplaceLabels
	mock.lockReplaceLabels.RUnlock()
	return calls
}

func (mock *issueServiceMock) Timeline(ctx context.Context, issueID int64) ([]domain.IssueEvent, error) {
	if mock.TimelineFunc == nil {
		panic("issueServiceMock.TimelineFunc: method is nil but issueService.Timeline was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IssueID int64
	}{
		Ctx:     ctx,
		IssueID: issueID,
	}
	mock.lockTimeline.Lock()
	mock.calls.Timeline = append(mock.calls.Timeline, callInfo)
	mock.lockTimeline.Unlock()
	return mock.TimelineFunc(ctx, issueID)
}

func (mock *issueServiceMock) TimelineCalls() []struct {
	Ctx     context.Context
	IssueID int64
} {
	var calls []struct {
		Ctx     context.Context
		IssueID int64
	}
	mock.lockTimeline.RLock()
	calls = mock.calls.Timeline
	mock.lockTimeline.RUnlock()
	return calls
}

func (mock *issueServiceMock) UpdateIssue(ctx context.Context, input issue.UpdateIssueInput) (*domain.Issue, error) {
	if mock.UpdateIssueFunc == nil {
		panic("issueServiceMock.UpdateIssueFunc: method is nil but issueService.UpdateIssue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.UpdateIssueInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateIssue.Lock()
	mock.calls.UpdateIssue = append(mock.calls.UpdateIssue, callInfo)
	mock.lockUpdateIssue.Unlock()
	return mock.UpdateIssueFunc(ctx, input)
}

func (mock *issueServiceMock) UpdateIssueCalls() []struct {
	Ctx   context.Context
	Input issue.UpdateIssueInput
} {
	var calls []struct {
		Ctx   context.Context
		Input issue.UpdateIssueInput
	}
	mock.lockUpdateIssue.RLock()
	calls = mock.calls.UpdateIssue
	mock.lockUpdateIssue.RUnlock()
	return calls
}
