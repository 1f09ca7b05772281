package issue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// UpdateIssue applies a partial update if input.Version still matches the
// stored version. Only fields present in the input change. A status change
// re-derives resolved_at but is not checked against the transition rules
// used by BulkUpdateStatus.
func (s *Service) UpdateIssue(ctx context.Context, input UpdateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Issue
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		issue, err := s.getIssue(txCtx, input.IssueID)
		if err != nil {
			return err
		}
		if issue.Version != input.Version {
			return &domain.VersionConflictError{IssueID: issue.ID, CurrentVersion: issue.Version}
		}

		if assigneeID, ok := input.AssigneeID.Get(); ok {
			if err := s.ensureUser(txCtx, assigneeID, "assignee_id"); err != nil {
				return err
			}
		}

		now := s.now()
		changes := applyPatch(issue, input, now)
		issue.Touch(now)

		if err := s.issues.Update(txCtx, issue, input.Version); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return s.conflict(txCtx, input.IssueID, err)
			}
			return fmt.Errorf("update issue: %w", err)
		}

		if _, err := s.events.Append(txCtx, domain.IssueEvent{
			IssueID:   issue.ID,
			EventType: domain.EventIssueUpdated,
			Payload:   changes,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("log event: %w", err)
		}

		updated = issue
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "issue updated",
		slog.Int64("issue_id", updated.ID),
		slog.Int("version", updated.Version),
	)

	if err := s.loadDetails(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// conflict re-reads the issue after a lost compare-and-increment so the
// caller learns the version that won.
func (s *Service) conflict(ctx context.Context, id int64, cause error) error {
	current, err := s.getIssue(ctx, id)
	if err != nil {
		return errors.Join(cause, err)
	}
	return &domain.VersionConflictError{IssueID: id, CurrentVersion: current.Version}
}

// applyPatch mutates issue with every present field of input and returns
// the old and new value of each field that was mentioned.
func applyPatch(issue *domain.Issue, input UpdateIssueInput, now time.Time) map[string]any {
	changes := make(map[string]any)

	if title, ok := input.Title.Get(); ok {
		title = strings.TrimSpace(title)
		changes["title"] = domain.FieldChange{Old: issue.Title, New: title}
		issue.Title = title
	}

	if input.Description.IsSet() {
		desc := trimOrNil(input.Description.Ptr())
		changes["description"] = domain.FieldChange{Old: issue.Description, New: desc}
		issue.Description = desc
	}

	if status, ok := input.Status.Get(); ok {
		changes["status"] = domain.FieldChange{Old: issue.Status.String(), New: status.String()}
		issue.SetStatus(status, now)
	}

	if input.AssigneeID.IsSet() {
		assignee := input.AssigneeID.Ptr()
		changes["assignee_id"] = domain.FieldChange{Old: issue.AssigneeID, New: assignee}
		issue.AssigneeID = assignee
	}

	return changes
}
