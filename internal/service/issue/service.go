package issue

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/issuetracker-backend/internal/config"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

type issueRepo interface {
	Create(ctx context.Context, issue *domain.Issue) error
	Update(ctx context.Context, issue *domain.Issue, expectedVersion int) error
	UpdateStatuses(ctx context.Context, issues []domain.Issue) error
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	LockByIDs(ctx context.Context, ids []int64) ([]domain.Issue, error)
	List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error)
	Count(ctx context.Context, f domain.IssueFilter) (int, error)
}

type userRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type labelRepo interface {
	GetOrCreate(ctx context.Context, names []string) ([]domain.Label, error)
	ReplaceForIssue(ctx context.Context, issueID int64, labelIDs []int64) error
	ListByIssueID(ctx context.Context, issueID int64) ([]domain.Label, error)
	ListByIssueIDs(ctx context.Context, issueIDs []int64) (map[int64][]domain.Label, error)
}

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	ListByIssueID(ctx context.Context, issueID int64) ([]domain.Comment, error)
}

type eventLog interface {
	Append(ctx context.Context, ev domain.IssueEvent) (domain.IssueEvent, error)
	AppendMany(ctx context.Context, events []domain.IssueEvent) error
	ListByIssueID(ctx context.Context, issueID int64) ([]domain.IssueEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements issue lifecycle operations: creation, optimistic
// updates, comments, label replacement, bulk status changes and the timeline.
type Service struct {
	issues   issueRepo
	users    userRepo
	labels   labelRepo
	comments commentRepo
	events   eventLog
	tx       txManager
	cfg      config.IssuesConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new issue service.
func NewService(
	log *slog.Logger,
	issues issueRepo,
	users userRepo,
	labels labelRepo,
	comments commentRepo,
	events eventLog,
	tx txManager,
	cfg config.IssuesConfig,
) *Service {
	return &Service{
		issues:   issues,
		users:    users,
		labels:   labels,
		comments: comments,
		events:   events,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "issue"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ensureUser returns a NotFoundError keyed by field when the user is absent.
func (s *Service) ensureUser(ctx context.Context, id int64, field string) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFoundError("User", field, id)
	}
	return nil
}
