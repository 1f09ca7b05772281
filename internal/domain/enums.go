package domain

// IssueStatus is the lifecycle state of an issue.
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "OPEN"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusResolved   IssueStatus = "RESOLVED"
	IssueStatusClosed     IssueStatus = "CLOSED"
)

// AllIssueStatuses lists every status in lifecycle order.
var AllIssueStatuses = []IssueStatus{
	IssueStatusOpen,
	IssueStatusInProgress,
	IssueStatusResolved,
	IssueStatusClosed,
}

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusOpen, IssueStatusInProgress, IssueStatusResolved, IssueStatusClosed:
		return true
	}
	return false
}

// IsResolved reports whether the status counts as resolved (RESOLVED or CLOSED).
func (s IssueStatus) IsResolved() bool {
	switch s {
	case IssueStatusResolved, IssueStatusClosed:
		return true
	case IssueStatusOpen, IssueStatusInProgress:
		return false
	}
	return false
}

// ParseIssueStatus converts an exact status name. Matching is case-sensitive.
func ParseIssueStatus(s string) (IssueStatus, bool) {
	st := IssueStatus(s)
	return st, st.IsValid()
}

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// IssueSortField is a column issues can be ordered by.
type IssueSortField string

const (
	IssueSortCreatedAt IssueSortField = "created_at"
	IssueSortUpdatedAt IssueSortField = "updated_at"
)

func (f IssueSortField) IsValid() bool {
	return f == IssueSortCreatedAt || f == IssueSortUpdatedAt
}
