// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u := domain.User{Name: name, Email: email}
	err := q.QueryRow(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		name, email,
	).Scan(&u.ID)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &u, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT id, name, email FROM users WHERE id = $1`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", id)
	}

	u := domain.User(row)
	return &u, nil
}

// Exists reports whether a user with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return exists, nil
}

// GetByEmails returns the users whose email exactly matches one of emails,
// keyed by email. Unknown emails are simply absent from the map.
func (r *Repo) GetByEmails(ctx context.Context, emails []string) (map[string]domain.User, error) {
	result := make(map[string]domain.User, len(emails))
	if len(emails) == 0 {
		return result, nil
	}

	var rows []userRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, name, email FROM users WHERE email = ANY($1::text[])`, emails)
	if err != nil {
		return nil, fmt.Errorf("get users by emails: %w", err)
	}

	for _, row := range rows {
		result[row.Email] = domain.User(row)
	}
	return result, nil
}
