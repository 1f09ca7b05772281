package domain

import "time"

// Comment is a note left on an issue.
type Comment struct {
	ID        int64
	IssueID   int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
}
