package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// BulkUpdateStatus moves every listed issue to input.Status or none of them.
//
// The issues are locked in id order for the duration of the transaction.
// Unknown ids are reported together as a single violation. Otherwise each
// issue is checked with domain.CheckTransition and every violation is
// collected before deciding. Any violation returns a *domain.BulkOperationError
// and the transaction is rolled back.
func (s *Service) BulkUpdateStatus(ctx context.Context, input BulkStatusInput) (int, error) {
	if err := input.Validate(s.cfg.MaxBulkIDs); err != nil {
		return 0, err
	}
	ids := uniqueIDs(input.IssueIDs)
	target := input.Status

	var updated int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.issues.LockByIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("lock issues: %w", err)
		}

		if missing := missingIDs(ids, locked); len(missing) > 0 {
			return &domain.BulkOperationError{Violations: []domain.BulkViolation{
				{IssueIDs: missing, Reason: domain.ReasonIssueNotFound},
			}}
		}

		var violations []domain.BulkViolation
		for _, is := range locked {
			for _, reason := range domain.CheckTransition(is.Status, is.HasAssignee(), target) {
				id := is.ID
				violations = append(violations, domain.BulkViolation{IssueID: &id, Reason: reason})
			}
		}
		if len(violations) > 0 {
			return &domain.BulkOperationError{Violations: violations}
		}

		now := s.now()
		events := make([]domain.IssueEvent, len(locked))
		for i := range locked {
			old := locked[i].Status
			locked[i].SetStatus(target, now)
			locked[i].Touch(now)
			events[i] = domain.IssueEvent{
				IssueID:   locked[i].ID,
				EventType: domain.EventBulkStatus,
				Payload: map[string]any{
					"issue_ids": ids,
					"status":    domain.FieldChange{Old: old.String(), New: target.String()},
				},
				CreatedAt: now,
			}
		}

		if err := s.issues.UpdateStatuses(txCtx, locked); err != nil {
			return fmt.Errorf("update statuses: %w", err)
		}
		if err := s.events.AppendMany(txCtx, events); err != nil {
			return fmt.Errorf("log events: %w", err)
		}

		updated = len(locked)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "bulk status applied",
		slog.Int("count", updated),
		slog.String("status", target.String()),
	)

	return updated, nil
}

// missingIDs returns the requested ids absent from found, in request order.
func missingIDs(requested []int64, found []domain.Issue) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, is := range found {
		present[is.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
