package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// CreateUser registers a user. A taken email yields domain.ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, strings.TrimSpace(input.Name), strings.TrimSpace(input.Email))
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.Int64("user_id", user.ID))
	return user, nil
}

// GetUser returns a user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError("User", "user_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return user, nil
}
