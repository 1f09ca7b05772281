// Package event implements the append-only issue event log using PostgreSQL.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Repo provides issue event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertEventSQL = `
INSERT INTO issue_events (issue_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

// Append inserts an event and returns it with its id filled in.
func (r *Repo) Append(ctx context.Context, ev domain.IssueEvent) (domain.IssueEvent, error) {
	payload, err := marshalPayload(ev.Payload)
	if err != nil {
		return domain.IssueEvent{}, fmt.Errorf("issue_event marshal payload: %w", err)
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, insertEventSQL, ev.IssueID, ev.EventType, payload, ev.CreatedAt).Scan(&ev.ID); err != nil {
		return domain.IssueEvent{}, postgres.MapError(err, "issue_event", ev.IssueID)
	}

	return ev, nil
}

// AppendMany inserts all events in one round trip.
func (r *Repo) AppendMany(ctx context.Context, events []domain.IssueEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, ev := range events {
		payload, err := marshalPayload(ev.Payload)
		if err != nil {
			return fmt.Errorf("issue_event marshal payload: %w", err)
		}
		createdAt := ev.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		batch.Queue(insertEventSQL, ev.IssueID, ev.EventType, payload, createdAt)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for _, ev := range events {
		var id int64
		if err := br.QueryRow().Scan(&id); err != nil {
			return postgres.MapError(err, "issue_event", ev.IssueID)
		}
	}

	return br.Close()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listByIssueSQL = `
SELECT id, issue_id, event_type, payload, created_at
FROM issue_events
WHERE issue_id = $1
ORDER BY created_at, id`

type eventRow struct {
	ID        int64          `db:"id"`
	IssueID   int64          `db:"issue_id"`
	EventType string         `db:"event_type"`
	Payload   map[string]any `db:"payload"`
	CreatedAt time.Time      `db:"created_at"`
}

// ListByIssueID returns the events of an issue oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByIssueID(ctx context.Context, issueID int64) ([]domain.IssueEvent, error) {
	var rows []eventRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByIssueSQL, issueID); err != nil {
		return nil, fmt.Errorf("list issue_events by issue %d: %w", issueID, err)
	}

	events := make([]domain.IssueEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.IssueEvent(row)
	}
	return events, nil
}

// marshalPayload encodes payload as JSONB; nil stays SQL NULL.
func marshalPayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	return json.Marshal(payload)
}
