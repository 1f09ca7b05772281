package issue

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// GetIssue returns an issue with its labels and comments.
func (s *Service) GetIssue(ctx context.Context, id int64) (*domain.Issue, error) {
	issue, err := s.getIssue(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.loadDetails(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// getIssue loads the bare issue row and maps absence to a NotFoundError.
func (s *Service) getIssue(ctx context.Context, id int64) (*domain.Issue, error) {
	issue, err := s.issues.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError("Issue", "issue_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}
	return issue, nil
}

// loadDetails fills labels and comments concurrently. Must not be called
// inside a transaction.
func (s *Service) loadDetails(ctx context.Context, issue *domain.Issue) error {
	var (
		labels   []domain.Label
		comments []domain.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		labels, err = s.labels.ListByIssueID(gctx, issue.ID)
		if err != nil {
			return fmt.Errorf("list labels: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByIssueID(gctx, issue.ID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if labels == nil {
		labels = []domain.Label{}
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	issue.Labels = labels
	issue.Comments = comments
	return nil
}
