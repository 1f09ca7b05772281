package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"github.com/heartmarshall/issuetracker-backend/pkg/ctxutil"
)

// Error codes of the JSON error envelope.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeVersionConflict  = "VERSION_CONFLICT"
	CodeBulkStatusFailed = "BULK_STATUS_FAILED"
	CodeValidation       = "VALIDATION_ERROR"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorPayload `json:"error"`
}

// ErrorPayload describes one failure. Details is code-specific.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type bulkErrorResponse struct {
	IssueID  *int64  `json:"issue_id,omitempty"`
	IssueIDs []int64 `json:"issue_ids,omitempty"`
	Reason   string  `json:"reason"`
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, ErrorResponse{Error: ErrorPayload{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// writeDomainError maps a service error onto the envelope. Unknown errors
// are logged and reported without details.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		conflictErr *domain.VersionConflictError
		bulkErr     *domain.BulkOperationError
		notFoundErr *domain.NotFoundError
		validErr    *domain.ValidationError
	)

	switch {
	case errors.As(err, &conflictErr):
		writeError(w, http.StatusConflict, CodeVersionConflict, "Issue version mismatch",
			map[string]int{"current_version": conflictErr.CurrentVersion})

	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, CodeVersionConflict, "Issue version mismatch", nil)

	case errors.As(err, &bulkErr):
		items := make([]bulkErrorResponse, 0, len(bulkErr.Violations))
		for _, v := range bulkErr.Violations {
			items = append(items, bulkErrorResponse{IssueID: v.IssueID, IssueIDs: v.IssueIDs, Reason: v.Reason})
		}
		writeError(w, http.StatusBadRequest, CodeBulkStatusFailed, "Bulk status update failed",
			map[string]any{"errors": items})

	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, CodeNotFound, notFoundErr.Entity+" not found",
			map[string]int64{notFoundErr.Field: notFoundErr.ID})

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)

	case errors.As(err, &validErr):
		fields := make([]fieldErrorResponse, 0, len(validErr.Errors))
		for _, fe := range validErr.Errors {
			fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeError(w, http.StatusBadRequest, CodeValidation, validationMessage(validErr),
			map[string]any{"fields": fields})

	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, "Validation failed", nil)

	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, CodeAlreadyExists, "Resource already exists", nil)

	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
	}
}

// validationMessage surfaces a lone field message directly, so clients
// get e.g. "Comment body cannot be empty" without digging into details.
func validationMessage(ve *domain.ValidationError) string {
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}
	return "Validation failed"
}
