package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

type labelResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type commentResponse struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issue_id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// issueResponse is the full issue. Comments is omitted in list items.
type issueResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      domain.IssueStatus `json:"status"`
	AssigneeID  *int64             `json:"assignee_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	ResolvedAt  *time.Time         `json:"resolved_at"`
	Version     int                `json:"version"`
	Labels      []labelResponse    `json:"labels"`
	Comments    *[]commentResponse `json:"comments,omitempty"`
}

type issueListResponse struct {
	Items  []issueResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type eventResponse struct {
	ID        int64          `json:"id"`
	IssueID   int64          `json:"issue_id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

type bulkStatusResponse struct {
	Updated int `json:"updated"`
}

type importRowErrorResponse struct {
	RowNumber int    `json:"row_number"`
	Reason    string `json:"reason"`
}

type importResponse struct {
	TotalRows int                      `json:"total_rows"`
	Created   int                      `json:"created"`
	Failed    int                      `json:"failed"`
	Errors    []importRowErrorResponse `json:"errors"`
}

type assigneeCountResponse struct {
	AssigneeID int64 `json:"assignee_id"`
	Count      int   `json:"count"`
}

type topAssigneesResponse struct {
	Items []assigneeCountResponse `json:"items"`
}

type latencyResponse struct {
	AverageSeconds *float64 `json:"average_seconds"`
	ResolvedCount  int      `json:"resolved_count"`
}

func toLabels(labels []domain.Label) []labelResponse {
	out := make([]labelResponse, 0, len(labels))
	for _, l := range labels {
		out = append(out, labelResponse{ID: l.ID, Name: l.Name})
	}
	return out
}

func toComment(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		IssueID:   c.IssueID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func toIssueSummary(i *domain.Issue) issueResponse {
	return issueResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		AssigneeID:  i.AssigneeID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		ResolvedAt:  i.ResolvedAt,
		Version:     i.Version,
		Labels:      toLabels(i.Labels),
	}
}

func toIssue(i *domain.Issue) issueResponse {
	resp := toIssueSummary(i)
	comments := make([]commentResponse, 0, len(i.Comments))
	for _, c := range i.Comments {
		comments = append(comments, toComment(c))
	}
	resp.Comments = &comments
	return resp
}

func toIssuePage(p *domain.IssuePage) issueListResponse {
	items := make([]issueResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, toIssueSummary(&p.Items[i]))
	}
	return issueListResponse{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}

func toUser(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toEvents(events []domain.IssueEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		payload := e.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		out = append(out, eventResponse{
			ID:        e.ID,
			IssueID:   e.IssueID,
			EventType: e.EventType,
			Payload:   payload,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

func toImport(r *domain.ImportResult) importResponse {
	errs := make([]importRowErrorResponse, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, importRowErrorResponse{RowNumber: e.RowNumber, Reason: e.Reason})
	}
	return importResponse{
		TotalRows: r.TotalRows,
		Created:   r.Created,
		Failed:    r.Failed,
		Errors:    errs,
	}
}
