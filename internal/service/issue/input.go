package issue

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// CreateIssueInput holds the parameters for creating an issue.
type CreateIssueInput struct {
	Title       string
	Description *string
	Status      *domain.IssueStatus
	AssigneeID  *int64
}

// Validate checks all fields and collects all errors.
func (i CreateIssueInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateIssueInput is a partial update guarded by the version the caller last saw.
type UpdateIssueInput struct {
	IssueID     int64
	Version     int
	Title       domain.Optional[string]
	Description domain.Optional[string]
	Status      domain.Optional[domain.IssueStatus]
	AssigneeID  domain.Optional[int64]
}

// Validate checks all fields and collects all errors.
func (i UpdateIssueInput) Validate() error {
	var errs []domain.FieldError

	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if i.Title.IsNull() {
		errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be null"})
	} else if title, ok := i.Title.Get(); ok {
		errs = append(errs, validateTitle(title)...)
	}
	if i.Status.IsNull() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "cannot be null"})
	} else if status, ok := i.Status.Get(); ok && !status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListIssuesInput holds filters and paging for ListIssues.
// Zero values select the defaults: first page, newest first.
type ListIssuesInput struct {
	Status     *domain.IssueStatus
	AssigneeID *int64
	Label      *string
	SortBy     domain.IssueSortField
	SortOrder  domain.SortOrder
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListIssuesInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "too large"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.SortBy != "" && !i.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be created_at or updated_at"})
	}
	if i.SortOrder != "" && !i.SortOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on an issue.
type AddCommentInput struct {
	IssueID  int64
	AuthorID int64
	Body     string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.AuthorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "Comment body cannot be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReplaceLabelsInput overwrites the label set of an issue.
type ReplaceLabelsInput struct {
	IssueID int64
	Labels  []string
}

// Validate checks all fields and collects all errors.
// Blank names are ignored; repeated names are rejected.
func (i ReplaceLabelsInput) Validate() error {
	var errs []domain.FieldError

	seen := make(map[string]struct{}, len(i.Labels))
	for _, raw := range i.Labels {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > domain.MaxLabelLength {
			errs = append(errs, domain.FieldError{Field: "labels", Message: "max 100 characters"})
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, domain.FieldError{Field: "labels", Message: "Duplicate labels are not allowed"})
			break
		}
		seen[name] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkStatusInput applies one target status to a set of issues.
type BulkStatusInput struct {
	IssueIDs []int64
	Status   domain.IssueStatus
}

// Validate checks all fields and collects all errors.
func (i BulkStatusInput) Validate(maxIDs int) error {
	var errs []domain.FieldError

	ids := uniqueIDs(i.IssueIDs)
	switch {
	case len(ids) == 0:
		errs = append(errs, domain.FieldError{Field: "issue_ids", Message: "required"})
	case len(ids) > maxIDs:
		errs = append(errs, domain.FieldError{Field: "issue_ids", Message: "too many ids"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "new_status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping the first occurrence.
func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
