package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// ReplaceLabels overwrites the label set of an issue, creating unknown labels
// on the fly. The previous set is discarded, never merged. The issue version
// is left untouched.
func (s *Service) ReplaceLabels(ctx context.Context, input ReplaceLabelsInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	names := domain.NormalizeLabelNames(input.Labels)

	var issue *domain.Issue
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		issue, err = s.getIssue(txCtx, input.IssueID)
		if err != nil {
			return err
		}

		labels, err := s.labels.GetOrCreate(txCtx, names)
		if err != nil {
			return fmt.Errorf("get or create labels: %w", err)
		}

		ids := make([]int64, len(labels))
		for i, l := range labels {
			ids[i] = l.ID
		}
		if err := s.labels.ReplaceForIssue(txCtx, issue.ID, ids); err != nil {
			return fmt.Errorf("replace labels: %w", err)
		}

		_, err = s.events.Append(txCtx, domain.IssueEvent{
			IssueID:   issue.ID,
			EventType: domain.EventLabelsReplaced,
			Payload:   map[string]any{"labels": names},
			CreatedAt: s.now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "labels replaced",
		slog.Int64("issue_id", issue.ID),
		slog.Int("count", len(names)),
	)

	if err := s.loadDetails(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}
