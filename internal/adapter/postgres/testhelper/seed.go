package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns an email address no other test will produce.
func UniqueEmail(prefix string) string {
	return prefix + "-" + uniqueSuffix() + "@example.com"
}

// UniqueName returns prefix with a unique suffix, for label names and titles.
func UniqueName(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		Name:  "Test User " + uniqueSuffix(),
		Email: UniqueEmail("testuser"),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		user.Name, user.Email,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// IssueOption customizes SeedIssue.
type IssueOption func(*domain.NewIssueParams)

// WithStatus seeds the issue in the given status.
func WithStatus(s domain.IssueStatus) IssueOption {
	return func(p *domain.NewIssueParams) { p.Status = &s }
}

// WithAssignee seeds the issue assigned to userID.
func WithAssignee(userID int64) IssueOption {
	return func(p *domain.NewIssueParams) { p.AssigneeID = &userID }
}

// SeedIssue inserts an issue built by domain.NewIssue, so status defaults
// and resolved_at follow the same rules as the API.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, opts ...IssueOption) domain.Issue {
	t.Helper()

	params := domain.NewIssueParams{Title: UniqueName("issue")}
	for _, opt := range opts {
		opt(&params)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	issue := domain.NewIssue(params, now)

	err := pool.QueryRow(context.Background(),
		`INSERT INTO issues (title, description, status, assignee_id, created_at, updated_at, resolved_at, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		issue.Title, issue.Description, string(issue.Status), issue.AssigneeID,
		issue.CreatedAt, issue.UpdatedAt, issue.ResolvedAt, issue.Version,
	).Scan(&issue.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedIssue: %v", err)
	}

	return *issue
}

// SeedLabel inserts a label with a unique name.
func SeedLabel(t *testing.T, pool *pgxpool.Pool) domain.Label {
	t.Helper()

	label := domain.Label{Name: UniqueName("label")}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO labels (name) VALUES ($1) RETURNING id`, label.Name,
	).Scan(&label.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLabel: %v", err)
	}

	return label
}

// AttachLabels links labels to an issue.
func AttachLabels(t *testing.T, pool *pgxpool.Pool, issueID int64, labels ...domain.Label) {
	t.Helper()

	for _, l := range labels {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO issue_labels (issue_id, label_id) VALUES ($1, $2)`, issueID, l.ID)
		if err != nil {
			t.Fatalf("testhelper: AttachLabels: %v", err)
		}
	}
}
