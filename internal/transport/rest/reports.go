package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

type reportService interface {
	TopAssignees(ctx context.Context, limit int) ([]domain.AssigneeCount, error)
	Latency(ctx context.Context) (domain.LatencyReport, error)
}

// ReportHandler serves the /reports endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

// TopAssignees handles GET /reports/top-assignees.
func (h *ReportHandler) TopAssignees(w http.ResponseWriter, r *http.Request) {
	limit, fe := queryInt(r, "limit", 0)
	if fe != nil {
		writeDomainError(w, r, h.log, domain.NewValidationErrors([]domain.FieldError{*fe}))
		return
	}

	counts, err := h.svc.TopAssignees(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]assigneeCountResponse, 0, len(counts))
	for _, c := range counts {
		items = append(items, assigneeCountResponse{AssigneeID: c.AssigneeID, Count: c.Count})
	}
	writeJSON(w, http.StatusOK, topAssigneesResponse{Items: items})
}

// Latency handles GET /reports/latency.
func (h *ReportHandler) Latency(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Latency(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, latencyResponse{
		AverageSeconds: report.AverageSeconds,
		ResolvedCount:  report.ResolvedCount,
	})
}
