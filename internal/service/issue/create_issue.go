package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// CreateIssue creates an issue. Status defaults to OPEN and resolved_at is
// derived from the initial status.
func (s *Service) CreateIssue(ctx context.Context, input CreateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.AssigneeID != nil {
		if err := s.ensureUser(ctx, *input.AssigneeID, "assignee_id"); err != nil {
			return nil, err
		}
	}

	now := s.now()
	issue := domain.NewIssue(domain.NewIssueParams{
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Status:      input.Status,
		AssigneeID:  input.AssigneeID,
	}, now)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.issues.Create(txCtx, issue); err != nil {
			return fmt.Errorf("create issue: %w", err)
		}
		_, err := s.events.Append(txCtx, domain.IssueEvent{
			IssueID:   issue.ID,
			EventType: domain.EventIssueCreated,
			Payload:   createdPayload(issue),
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "issue created",
		slog.Int64("issue_id", issue.ID),
		slog.String("status", issue.Status.String()),
	)

	issue.Labels = []domain.Label{}
	issue.Comments = []domain.Comment{}
	return issue, nil
}

// createdPayload is the "issue.created" event body.
func createdPayload(issue *domain.Issue) map[string]any {
	return map[string]any{
		"status":      issue.Status.String(),
		"assignee_id": issue.AssigneeID,
	}
}
