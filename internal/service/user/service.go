package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, name, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service implements user registration and lookup. Users are referenced by
// issues as assignees and by comments as authors.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
