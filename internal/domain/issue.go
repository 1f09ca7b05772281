package domain

import "time"

// MaxTitleLength is the longest issue title, in characters.
const MaxTitleLength = 200

// Issue is a tracked unit of work.
type Issue struct {
	ID          int64
	Title       string
	Description *string
	Status      IssueStatus
	AssigneeID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	Version     int

	Labels   []Label
	Comments []Comment
}

// HasAssignee reports whether the issue is assigned to someone.
func (i *Issue) HasAssignee() bool {
	return i.AssigneeID != nil
}

// SetStatus changes the status and keeps ResolvedAt consistent with it:
// entering RESOLVED or CLOSED stamps now unless already stamped, any other
// status clears it.
func (i *Issue) SetStatus(status IssueStatus, now time.Time) {
	i.Status = status
	if status.IsResolved() {
		if i.ResolvedAt == nil {
			t := now
			i.ResolvedAt = &t
		}
		return
	}
	i.ResolvedAt = nil
}

// Touch records a successful mutation.
func (i *Issue) Touch(now time.Time) {
	i.UpdatedAt = now
	i.Version++
}

// NewIssueParams holds the caller-supplied fields of a new issue.
type NewIssueParams struct {
	Title       string
	Description *string
	Status      *IssueStatus
	AssigneeID  *int64
}

// NewIssue builds an unsaved issue with defaults applied: status OPEN when
// absent, ResolvedAt derived from the status, version 1.
func NewIssue(p NewIssueParams, now time.Time) *Issue {
	status := IssueStatusOpen
	if p.Status != nil {
		status = *p.Status
	}

	issue := &Issue{
		Title:       p.Title,
		Description: p.Description,
		AssigneeID:  p.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
	issue.SetStatus(status, now)
	return issue
}

// IssueFilter contains filtering/pagination parameters for issue listing.
type IssueFilter struct {
	Status     *IssueStatus
	AssigneeID *int64
	Label      *string
	SortBy     IssueSortField
	SortOrder  SortOrder
	Limit      int
	Offset     int
}

// IssuePage is one page of a filtered issue listing.
type IssuePage struct {
	Items  []Issue
	Total  int
	Limit  int
	Offset int
}
