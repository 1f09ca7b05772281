package domain

// Rejection reasons produced by CheckTransition.
const (
	ReasonAssigneeRequired = "Assignee required for resolved/closed"
	ReasonCloseFromOpen    = "Cannot close directly from open"
	ReasonIssueNotFound    = "Issue not found"
)

// CheckTransition returns every reason the move from current to target is
// rejected. An empty result means the transition is allowed. The rules are
// independent, so one call can return several reasons.
func CheckTransition(current IssueStatus, hasAssignee bool, target IssueStatus) []string {
	var reasons []string

	if target.IsResolved() && !hasAssignee {
		reasons = append(reasons, ReasonAssigneeRequired)
	}

	switch current {
	case IssueStatusOpen:
		if target == IssueStatusClosed {
			reasons = append(reasons, ReasonCloseFromOpen)
		}
	case IssueStatusInProgress, IssueStatusResolved, IssueStatusClosed:
	}

	return reasons
}
