package app

import (
	"log/slog"

	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/event"
	issuerepo "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/issue"
	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/label"
	reportrepo "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/report"
	userrepo "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/issuetracker-backend/internal/config"
	"github.com/heartmarshall/issuetracker-backend/internal/service/importer"
	"github.com/heartmarshall/issuetracker-backend/internal/service/issue"
	"github.com/heartmarshall/issuetracker-backend/internal/service/report"
	"github.com/heartmarshall/issuetracker-backend/internal/service/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Services holds the business services wired to one connection pool.
type Services struct {
	Issues   *issue.Service
	Importer *importer.Service
	Users    *user.Service
	Reports  *report.Service
}

// NewServices builds repositories on pool and the services on top of them.
// All services share one TxManager.
func NewServices(pool *pgxpool.Pool, cfg config.IssuesConfig, logger *slog.Logger) *Services {
	var (
		tx       = postgres.NewTxManager(pool)
		issues   = issuerepo.New(pool)
		users    = userrepo.New(pool)
		labels   = label.New(pool)
		comments = comment.New(pool)
		events   = event.New(pool)
	)

	return &Services{
		Issues:   issue.NewService(logger, issues, users, labels, comments, events, tx, cfg),
		Importer: importer.NewService(logger, users, issues, labels, events, tx, cfg),
		Users:    user.NewService(logger, users),
		Reports:  report.NewService(logger, reportrepo.New(pool), cfg),
	}
}
