package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// AddComment attaches a comment by an existing user to an existing issue.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.getIssue(txCtx, input.IssueID); err != nil {
			return err
		}
		if err := s.ensureUser(txCtx, input.AuthorID, "author_id"); err != nil {
			return err
		}

		var err error
		created, err = s.comments.Create(txCtx, domain.Comment{
			IssueID:   input.IssueID,
			AuthorID:  input.AuthorID,
			Body:      strings.TrimSpace(input.Body),
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		_, err = s.events.Append(txCtx, domain.IssueEvent{
			IssueID:   input.IssueID,
			EventType: domain.EventCommentCreated,
			Payload:   map[string]any{"comment_id": created.ID},
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.Int64("issue_id", input.IssueID),
		slog.Int64("comment_id", created.ID),
	)

	return created, nil
}
