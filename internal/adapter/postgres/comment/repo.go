// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type commentRow struct {
	ID        int64     `db:"id"`
	IssueID   int64     `db:"issue_id"`
	AuthorID  int64     `db:"author_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts a comment. A missing issue or author yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO comments (issue_id, author_id, body, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.IssueID, c.AuthorID, c.Body, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, postgres.MapError(err, "comment on issue", c.IssueID)
	}

	return &c, nil
}

// ListByIssueID returns the comments of an issue oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByIssueID(ctx context.Context, issueID int64) ([]domain.Comment, error) {
	var rows []commentRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, issue_id, author_id, body, created_at
		 FROM comments
		 WHERE issue_id = $1
		 ORDER BY created_at, id`, issueID)
	if err != nil {
		return nil, fmt.Errorf("list comments by issue %d: %w", issueID, err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = domain.Comment(row)
	}
	return comments, nil
}
