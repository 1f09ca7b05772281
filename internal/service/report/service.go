// Package report computes read-only aggregates over issues.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker-backend/internal/config"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

type reportRepo interface {
	TopAssignees(ctx context.Context, limit int) ([]domain.AssigneeCount, error)
	Latency(ctx context.Context) (domain.LatencyReport, error)
}

// Service serves issue reports.
type Service struct {
	reports reportRepo
	cfg     config.IssuesConfig
	log     *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, reports reportRepo, cfg config.IssuesConfig) *Service {
	return &Service{
		reports: reports,
		cfg:     cfg,
		log:     log.With("service", "report"),
	}
}

// TopAssignees returns the users with the most assigned issues, busiest
// first. A zero limit selects the configured default.
func (s *Service) TopAssignees(ctx context.Context, limit int) ([]domain.AssigneeCount, error) {
	if limit == 0 {
		limit = s.cfg.DefaultReportLimit
	}
	if limit < 0 || limit > s.cfg.MaxPageSize {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", s.cfg.MaxPageSize))
	}

	items, err := s.reports.TopAssignees(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopAssignees: %w", err)
	}
	if items == nil {
		items = []domain.AssigneeCount{}
	}
	return items, nil
}

// Latency returns the average time from creation to resolution over all
// resolved issues.
func (s *Service) Latency(ctx context.Context) (domain.LatencyReport, error) {
	rep, err := s.reports.Latency(ctx)
	if err != nil {
		return domain.LatencyReport{}, fmt.Errorf("report.Latency: %w", err)
	}
	return rep, nil
}
