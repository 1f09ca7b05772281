package domain

import "time"

// Event types recorded in the issue timeline.
const (
	EventIssueCreated   = "issue.created"
	EventIssueUpdated   = "issue.updated"
	EventCommentCreated = "comment.created"
	EventLabelsReplaced = "labels.replaced"
	EventBulkStatus     = "bulk.status"
)

// IssueEvent is an append-only audit record of a change to an issue.
type IssueEvent struct {
	ID        int64
	IssueID   int64
	EventType string
	Payload   map[string]any
	CreatedAt time.Time
}

// FieldChange is the before/after value of one field in an update.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}
