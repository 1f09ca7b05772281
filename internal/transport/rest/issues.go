package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"github.com/heartmarshall/issuetracker-backend/internal/service/issue"
)

type issueService interface {
	CreateIssue(ctx context.Context, input issue.CreateIssueInput) (*domain.Issue, error)
	GetIssue(ctx context.Context, id int64) (*domain.Issue, error)
	ListIssues(ctx context.Context, input issue.ListIssuesInput) (*domain.IssuePage, error)
	UpdateIssue(ctx context.Context, input issue.UpdateIssueInput) (*domain.Issue, error)
	AddComment(ctx context.Context, input issue.AddCommentInput) (*domain.Comment, error)
	ReplaceLabels(ctx context.Context, input issue.ReplaceLabelsInput) (*domain.Issue, error)
	BulkUpdateStatus(ctx context.Context, input issue.BulkStatusInput) (int, error)
	Timeline(ctx context.Context, issueID int64) ([]domain.IssueEvent, error)
}

// IssueHandler serves the /issues endpoints except CSV import.
type IssueHandler struct {
	svc issueService
	log *slog.Logger
}

// NewIssueHandler creates an IssueHandler.
func NewIssueHandler(svc issueService, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, log: logger.With("handler", "issues")}
}

type createIssueRequest struct {
	Title       string              `json:"title"       validate:"required"`
	Description *string             `json:"description"`
	Status      *domain.IssueStatus `json:"status"`
	AssigneeID  *int64              `json:"assignee_id" validate:"omitempty,gt=0"`
}

// updateIssueRequest keeps absent and null apart for every patchable field.
type updateIssueRequest struct {
	Title       domain.Optional[string]             `json:"title"`
	Description domain.Optional[string]             `json:"description"`
	Status      domain.Optional[domain.IssueStatus] `json:"status"`
	AssigneeID  domain.Optional[int64]              `json:"assignee_id"`
	Version     int                                 `json:"version" validate:"required,gte=1"`
}

type addCommentRequest struct {
	Body     string `json:"body"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}

type replaceLabelsRequest struct {
	Labels []string `json:"labels" validate:"dive,max=100"`
}

type bulkStatusRequest struct {
	IssueIDs  []int64            `json:"issue_ids"  validate:"required,min=1,dive,gt=0"`
	NewStatus domain.IssueStatus `json:"new_status" validate:"required"`
}

// Create handles POST /issues.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIssueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	created, err := h.svc.CreateIssue(r.Context(), issue.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIssue(created))
}

// List handles GET /issues.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.svc.ListIssues(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssuePage(page))
}

// Get handles GET /issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "issue_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	found, err := h.svc.GetIssue(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssue(found))
}

// Update handles PATCH /issues/{id}.
func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "issue_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateIssueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateIssue(r.Context(), issue.UpdateIssueInput{
		IssueID:     id,
		Version:     req.Version,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssue(updated))
}

// AddComment handles POST /issues/{id}/comments.
func (h *IssueHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "issue_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req addCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.svc.AddComment(r.Context(), issue.AddCommentInput{
		IssueID:  id,
		AuthorID: req.AuthorID,
		Body:     req.Body,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toComment(*comment))
}

// ReplaceLabels handles PUT /issues/{id}/labels.
func (h *IssueHandler) ReplaceLabels(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "issue_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req replaceLabelsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.svc.ReplaceLabels(r.Context(), issue.ReplaceLabelsInput{
		IssueID: id,
		Labels:  req.Labels,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssue(updated))
}

// BulkStatus handles POST /issues/bulk-status.
func (h *IssueHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.svc.BulkUpdateStatus(r.Context(), issue.BulkStatusInput{
		IssueIDs: req.IssueIDs,
		Status:   req.NewStatus,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bulkStatusResponse{Updated: updated})
}

// Timeline handles GET /issues/{id}/timeline.
func (h *IssueHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "issue_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	events, err := h.svc.Timeline(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEvents(events))
}

func (h *IssueHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, h.log, err)
}

// listInputFromQuery reads filters and paging from the query string.
// Range checks are left to the service.
func listInputFromQuery(r *http.Request) (issue.ListIssuesInput, error) {
	q := r.URL.Query()
	var (
		input issue.ListIssuesInput
		errs  []domain.FieldError
	)

	if raw := q.Get("status"); raw != "" {
		st := domain.IssueStatus(raw)
		input.Status = &st
	}
	if raw := q.Get("assignee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "must be an integer"})
		} else {
			input.AssigneeID = &id
		}
	}
	if raw := q.Get("label"); raw != "" {
		input.Label = &raw
	}
	input.SortBy = domain.IssueSortField(q.Get("sort"))
	input.SortOrder = domain.SortOrder(q.Get("order"))

	limit, fe := queryInt(r, "limit", 0)
	if fe != nil {
		errs = append(errs, *fe)
	}
	offset, fe := queryInt(r, "offset", 0)
	if fe != nil {
		errs = append(errs, *fe)
	}
	input.Limit, input.Offset = limit, offset

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}
