package issue

import (
	"context"
	"fmt"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Timeline returns the events of an issue, oldest first.
func (s *Service) Timeline(ctx context.Context, issueID int64) ([]domain.IssueEvent, error) {
	if _, err := s.getIssue(ctx, issueID); err != nil {
		return nil, err
	}

	events, err := s.events.ListByIssueID(ctx, issueID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []domain.IssueEvent{}
	}
	return events, nil
}
