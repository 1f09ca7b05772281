package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")
	ErrBulkOperationFailed = errors.New("bulk operation failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError reports which entity was missing and under which key.
// Field is the request-facing key (e.g. "issue_id", "assignee_id").
type NotFoundError struct {
	Entity string
	Field  string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity, field string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, Field: field, ID: id}
}

// VersionConflictError is returned when an update carries a stale version token.
type VersionConflictError struct {
	IssueID        int64
	CurrentVersion int
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("issue %d: version mismatch (current %d)", e.IssueID, e.CurrentVersion)
}

func (e *VersionConflictError) Unwrap() error { return ErrConflict }

// BulkViolation is one reason a bulk status change was rejected.
// Exactly one of IssueID or IssueIDs is set: IssueIDs groups ids that do not exist.
type BulkViolation struct {
	IssueID  *int64
	IssueIDs []int64
	Reason   string
}

// BulkOperationError carries every violation found in a rejected batch.
type BulkOperationError struct {
	Violations []BulkViolation
}

func (e *BulkOperationError) Error() string {
	return fmt.Sprintf("bulk status: %d violations", len(e.Violations))
}

func (e *BulkOperationError) Unwrap() error { return ErrBulkOperationFailed }
