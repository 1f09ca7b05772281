// Package importer creates issues in bulk from CSV files. An import either
// persists every row or none of them.
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/issuetracker-backend/internal/config"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

type userRepo interface {
	GetByEmails(ctx context.Context, emails []string) (map[string]domain.User, error)
}

type issueRepo interface {
	Create(ctx context.Context, issue *domain.Issue) error
}

type labelRepo interface {
	GetOrCreate(ctx context.Context, names []string) ([]domain.Label, error)
	Attach(ctx context.Context, issueID int64, labelIDs []int64) error
}

type eventLog interface {
	AppendMany(ctx context.Context, events []domain.IssueEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service validates and persists CSV imports.
type Service struct {
	users  userRepo
	issues issueRepo
	labels labelRepo
	events eventLog
	tx     txManager
	cfg    config.IssuesConfig
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new import service.
func NewService(
	log *slog.Logger,
	users userRepo,
	issues issueRepo,
	labels labelRepo,
	events eventLog,
	tx txManager,
	cfg config.IssuesConfig,
) *Service {
	return &Service{
		users:  users,
		issues: issues,
		labels: labels,
		events: events,
		tx:     tx,
		cfg:    cfg,
		log:    log.With("service", "importer"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}
