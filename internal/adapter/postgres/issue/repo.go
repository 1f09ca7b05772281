// Package issue implements the Issue repository using PostgreSQL.
// Listing is built with squirrel; writes use compare-and-increment on version.
package issue

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var issueColumns = []string{
	"id", "title", "description", "status", "assignee_id",
	"created_at", "updated_at", "resolved_at", "version",
}

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new issue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type issueRow struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Status      string     `db:"status"`
	AssigneeID  *int64     `db:"assignee_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	ResolvedAt  *time.Time `db:"resolved_at"`
	Version     int        `db:"version"`
}

func (r issueRow) toDomain() domain.Issue {
	return domain.Issue{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.IssueStatus(r.Status),
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		ResolvedAt:  r.ResolvedAt,
		Version:     r.Version,
	}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO issues (title, description, status, assignee_id, created_at, updated_at, resolved_at, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

const selectByIDSQL = `
SELECT id, title, description, status, assignee_id, created_at, updated_at, resolved_at, version
FROM issues
WHERE id = $1`

const lockByIDsSQL = `
SELECT id, title, description, status, assignee_id, created_at, updated_at, resolved_at, version
FROM issues
WHERE id = ANY($1::bigint[])
ORDER BY id
FOR UPDATE`

const updateSQL = `
UPDATE issues
SET title = $3,
    description = $4,
    status = $5,
    assignee_id = $6,
    updated_at = $7,
    resolved_at = $8,
    version = version + 1
WHERE id = $1 AND version = $2
RETURNING version`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an issue built by domain.NewIssue and sets its ID.
func (r *Repo) Create(ctx context.Context, issue *domain.Issue) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, insertSQL,
		issue.Title, issue.Description, string(issue.Status), issue.AssigneeID,
		issue.CreatedAt, issue.UpdatedAt, issue.ResolvedAt, issue.Version,
	).Scan(&issue.ID)
	if err != nil {
		return postgres.MapError(err, "issue", issue.Title)
	}
	return nil
}

// Update persists the mutable fields of issue if the stored version still
// equals expectedVersion, incrementing it. When another writer got there
// first the error wraps domain.ErrConflict and nothing is written.
// On success issue.Version is set to the new stored version.
func (r *Repo) Update(ctx context.Context, issue *domain.Issue, expectedVersion int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var newVersion int
	err := q.QueryRow(ctx, updateSQL,
		issue.ID, expectedVersion,
		issue.Title, issue.Description, string(issue.Status), issue.AssigneeID,
		issue.UpdatedAt, issue.ResolvedAt,
	).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("issue %d at version %d: %w", issue.ID, expectedVersion, domain.ErrConflict)
	}
	if err != nil {
		return postgres.MapError(err, "issue", issue.ID)
	}

	issue.Version = newVersion
	return nil
}

// UpdateStatuses writes status, resolved_at, updated_at and version of each
// issue in one batch. Callers must hold the row locks (see LockByIDs).
func (r *Repo) UpdateStatuses(ctx context.Context, issues []domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, is := range issues {
		batch.Queue(
			`UPDATE issues SET status = $2, resolved_at = $3, updated_at = $4, version = $5 WHERE id = $1`,
			is.ID, string(is.Status), is.ResolvedAt, is.UpdatedAt, is.Version,
		)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, is := range issues {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "issue", is.ID)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("issue %d: %w", is.ID, domain.ErrNotFound)
		}
	}
	return br.Close()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an issue without labels or comments.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	var row issueRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, selectByIDSQL, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("issue %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "issue", id)
	}

	issue := row.toDomain()
	return &issue, nil
}

// LockByIDs selects the issues with the given ids FOR UPDATE, in id order so
// concurrent callers acquire locks in the same sequence. Missing ids are
// simply absent from the result. Must run inside a transaction.
func (r *Repo) LockByIDs(ctx context.Context, ids []int64) ([]domain.Issue, error) {
	if len(ids) == 0 {
		return []domain.Issue{}, nil
	}

	var rows []issueRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, lockByIDsSQL, ids); err != nil {
		return nil, fmt.Errorf("lock issues: %w", err)
	}

	issues := make([]domain.Issue, len(rows))
	for i, row := range rows {
		issues[i] = row.toDomain()
	}
	return issues, nil
}

// List returns one page of issues matching f.
func (r *Repo) List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error) {
	query, args, err := applyFilter(psql.Select(issueColumns...).From("issues"), f).
		OrderBy(orderBy(f)...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list issues query: %w", err)
	}

	var rows []issueRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	issues := make([]domain.Issue, len(rows))
	for i, row := range rows {
		issues[i] = row.toDomain()
	}
	return issues, nil
}

// Count returns the number of issues matching f, ignoring pagination.
func (r *Repo) Count(ctx context.Context, f domain.IssueFilter) (int, error) {
	query, args, err := applyFilter(psql.Select("count(*)").From("issues"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count issues query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count issues: %w", err)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func applyFilter(b sq.SelectBuilder, f domain.IssueFilter) sq.SelectBuilder {
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.AssigneeID != nil {
		b = b.Where(sq.Eq{"assignee_id": *f.AssigneeID})
	}
	if f.Label != nil {
		b = b.Where(sq.Expr(
			`EXISTS (SELECT 1 FROM issue_labels il JOIN labels l ON l.id = il.label_id WHERE il.issue_id = issues.id AND l.name = ?)`,
			*f.Label,
		))
	}
	return b
}

func orderBy(f domain.IssueFilter) []string {
	col := string(domain.IssueSortCreatedAt)
	if f.SortBy.IsValid() {
		col = string(f.SortBy)
	}
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}
	return []string{col + " " + dir, "id " + dir}
}
