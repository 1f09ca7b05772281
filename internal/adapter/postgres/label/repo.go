// Package label implements the Label repository and the issue_labels
// many-to-many link using PostgreSQL.
package label

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Repo provides label persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new label repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type labelRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type issueLabelRow struct {
	IssueID int64  `db:"issue_id"`
	ID      int64  `db:"id"`
	Name    string `db:"name"`
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertMissingSQL = `
INSERT INTO labels (name)
SELECT unnest($1::text[])
ON CONFLICT (name) DO NOTHING`

const selectByNamesSQL = `
SELECT id, name FROM labels WHERE name = ANY($1::text[])`

const listByIssueSQL = `
SELECT l.id, l.name
FROM issue_labels il
JOIN labels l ON l.id = il.label_id
WHERE il.issue_id = $1
ORDER BY l.name`

const listByIssuesSQL = `
SELECT il.issue_id, l.id, l.name
FROM issue_labels il
JOIN labels l ON l.id = il.label_id
WHERE il.issue_id = ANY($1::bigint[])
ORDER BY il.issue_id, l.name`

const attachSQL = `
INSERT INTO issue_labels (issue_id, label_id)
SELECT $1, unnest($2::bigint[])
ON CONFLICT DO NOTHING`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// GetOrCreate returns a label for every name, creating the missing ones.
// Names must already be normalized (trimmed, unique). The result follows
// the order of names.
func (r *Repo) GetOrCreate(ctx context.Context, names []string) ([]domain.Label, error) {
	if len(names) == 0 {
		return []domain.Label{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, insertMissingSQL, names); err != nil {
		return nil, postgres.MapError(err, "labels", names)
	}

	var rows []labelRow
	if err := pgxscan.Select(ctx, q, &rows, selectByNamesSQL, names); err != nil {
		return nil, fmt.Errorf("select labels by names: %w", err)
	}

	byName := make(map[string]domain.Label, len(rows))
	for _, row := range rows {
		byName[row.Name] = domain.Label(row)
	}

	labels := make([]domain.Label, 0, len(names))
	for _, name := range names {
		l, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("label %q missing after upsert", name)
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// Attach links labels to an issue, ignoring links that already exist.
func (r *Repo) Attach(ctx context.Context, issueID int64, labelIDs []int64) error {
	if len(labelIDs) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, attachSQL, issueID, labelIDs); err != nil {
		return postgres.MapError(err, "issue_labels", issueID)
	}
	return nil
}

// ReplaceForIssue overwrites the label set of an issue. Run it inside a
// transaction so readers never observe the intermediate empty set.
func (r *Repo) ReplaceForIssue(ctx context.Context, issueID int64, labelIDs []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM issue_labels WHERE issue_id = $1`, issueID); err != nil {
		return postgres.MapError(err, "issue_labels", issueID)
	}

	return r.Attach(ctx, issueID, labelIDs)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByIssueID returns the labels of one issue ordered by name.
// Returns an empty slice (not nil) when the issue has no labels.
func (r *Repo) ListByIssueID(ctx context.Context, issueID int64) ([]domain.Label, error) {
	var rows []labelRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByIssueSQL, issueID); err != nil {
		return nil, fmt.Errorf("list labels by issue %d: %w", issueID, err)
	}

	labels := make([]domain.Label, len(rows))
	for i, row := range rows {
		labels[i] = domain.Label(row)
	}
	return labels, nil
}

// ListByIssueIDs returns labels grouped by issue id (batch for list pages).
func (r *Repo) ListByIssueIDs(ctx context.Context, issueIDs []int64) (map[int64][]domain.Label, error) {
	result := make(map[int64][]domain.Label, len(issueIDs))
	if len(issueIDs) == 0 {
		return result, nil
	}

	var rows []issueLabelRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByIssuesSQL, issueIDs); err != nil {
		return nil, fmt.Errorf("list labels by issues: %w", err)
	}

	for _, row := range rows {
		result[row.IssueID] = append(result[row.IssueID], domain.Label{ID: row.ID, Name: row.Name})
	}
	return result, nil
}
