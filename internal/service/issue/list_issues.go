package issue

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// ListIssues returns one page of issues with their labels, plus the total
// number of matching issues.
func (s *Service) ListIssues(ctx context.Context, input ListIssuesInput) (*domain.IssuePage, error) {
	if err := input.Validate(s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	f := domain.IssueFilter{
		Status:     input.Status,
		AssigneeID: input.AssigneeID,
		Label:      input.Label,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if f.Limit == 0 {
		f.Limit = s.cfg.DefaultPageSize
	}
	if f.SortBy == "" {
		f.SortBy = domain.IssueSortCreatedAt
	}
	if f.SortOrder == "" {
		f.SortOrder = domain.SortDesc
	}

	var (
		items []domain.Issue
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.issues.List(gctx, f)
		if err != nil {
			return fmt.Errorf("list issues: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.issues.Count(gctx, f)
		if err != nil {
			return fmt.Errorf("count issues: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(items) > 0 {
		ids := make([]int64, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		byIssue, err := s.labels.ListByIssueIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list labels: %w", err)
		}
		for i := range items {
			items[i].Labels = byIssue[items[i].ID]
			if items[i].Labels == nil {
				items[i].Labels = []domain.Label{}
			}
		}
	}
	if items == nil {
		items = []domain.Issue{}
	}

	return &domain.IssuePage{
		Items:  items,
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}, nil
}
