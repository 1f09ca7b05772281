package domain

// AssigneeCount is the number of issues assigned to one user.
type AssigneeCount struct {
	AssigneeID int64
	Count      int
}

// LatencyReport summarizes time-to-resolution over resolved issues.
// AverageSeconds is nil when no issue has been resolved.
type LatencyReport struct {
	AverageSeconds *float64
	ResolvedCount  int
}
