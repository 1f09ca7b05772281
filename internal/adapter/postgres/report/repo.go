// Package report implements aggregate read queries over issues.
package report

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo runs report queries against PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type assigneeCountRow struct {
	AssigneeID int64 `db:"assignee_id"`
	Count      int   `db:"count"`
}

// TopAssignees returns users ranked by number of assigned issues, ties broken
// by assignee id.
func (r *Repo) TopAssignees(ctx context.Context, limit int) ([]domain.AssigneeCount, error) {
	query, args, err := psql.
		Select("assignee_id", "count(*) AS count").
		From("issues").
		Where(sq.NotEq{"assignee_id": nil}).
		GroupBy("assignee_id").
		OrderBy("count DESC", "assignee_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top assignees query: %w", err)
	}

	var rows []assigneeCountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("top assignees: %w", err)
	}

	result := make([]domain.AssigneeCount, len(rows))
	for i, row := range rows {
		result[i] = domain.AssigneeCount(row)
	}
	return result, nil
}

const latencySQL = `
SELECT avg(extract(epoch FROM resolved_at - created_at))::float8 AS average_seconds,
       count(*) AS resolved_count
FROM issues
WHERE resolved_at IS NOT NULL`

// Latency returns the mean time from creation to resolution over all
// currently resolved issues.
func (r *Repo) Latency(ctx context.Context) (domain.LatencyReport, error) {
	var report domain.LatencyReport
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, latencySQL).
		Scan(&report.AverageSeconds, &report.ResolvedCount)
	if err != nil {
		return domain.LatencyReport{}, fmt.Errorf("latency report: %w", err)
	}
	return report, nil
}
