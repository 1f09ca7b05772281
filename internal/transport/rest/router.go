package rest

import (
	"net/http"

	"github.com/heartmarshall/issuetracker-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Issues  *IssueHandler
	Import  *ImportHandler
	Users   *UserHandler
	Reports *ReportHandler
}

// NewRouter registers all routes. importLimit wraps the CSV import route
// only; pass nil to leave it unthrottled.
func NewRouter(h Handlers, importLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /users", h.Users.Create)
	mux.HandleFunc("GET /users/{id}", h.Users.Get)

	mux.HandleFunc("POST /issues", h.Issues.Create)
	mux.HandleFunc("GET /issues", h.Issues.List)
	mux.HandleFunc("GET /issues/{id}", h.Issues.Get)
	mux.HandleFunc("PATCH /issues/{id}", h.Issues.Update)
	mux.HandleFunc("POST /issues/{id}/comments", h.Issues.AddComment)
	mux.HandleFunc("PUT /issues/{id}/labels", h.Issues.ReplaceLabels)
	mux.HandleFunc("GET /issues/{id}/timeline", h.Issues.Timeline)
	mux.HandleFunc("POST /issues/bulk-status", h.Issues.BulkStatus)

	var importHandler http.Handler = http.HandlerFunc(h.Import.Import)
	if importLimit != nil {
		importHandler = importLimit(importHandler)
	}
	mux.Handle("POST /issues/import", importHandler)

	mux.HandleFunc("GET /reports/top-assignees", h.Reports.TopAssignees)
	mux.HandleFunc("GET /reports/latency", h.Reports.Latency)

	mux.HandleFunc("/", notFound)

	return mux
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
}
