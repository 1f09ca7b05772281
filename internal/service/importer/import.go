package importer

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Row-level rejection reasons. The first failing rule of a row wins.
const (
	ReasonMissingColumns  = "Missing required columns"
	ReasonTitleRequired   = "Title is required"
	ReasonTitleTooLong    = "Title must be at most 200 characters"
	ReasonLabelTooLong    = "Label must be at most 100 characters"
	ReasonInvalidStatus   = "Invalid status"
	ReasonAssigneeMissing = "Assignee email not found"
)

// firstDataRow is the row number of the first record; the header is row 1.
const firstDataRow = 2

// parsedRow is a data row that passed the title and status checks.
type parsedRow struct {
	rowNumber   int
	title       string
	description *string
	status      *domain.IssueStatus
	email       string
	assigneeID  *int64
	labels      []string
}

// Import validates every row of a CSV document and, only if all rows are
// valid, creates one issue per row in a single transaction.
//
// A rejected file is not an error: the returned result lists every failing
// row and Created is 0. Errors are reserved for oversized or unreadable
// input and for storage failures.
func (s *Service) Import(ctx context.Context, r io.Reader) (*domain.ImportResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxImportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxImportBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("max %d bytes", s.cfg.MaxImportBytes))
	}

	records, err := parseCSV(data)
	if errors.Is(err, errMissingColumns) {
		return &domain.ImportResult{
			Errors: []domain.ImportRowError{{RowNumber: 1, Reason: ReasonMissingColumns}},
		}, nil
	}
	if err != nil {
		return nil, domain.NewValidationError("file", err.Error())
	}
	if len(records) > s.cfg.MaxImportRows {
		return nil, domain.NewValidationError("file", fmt.Sprintf("max %d rows", s.cfg.MaxImportRows))
	}

	rows, rowErrs, err := s.validate(ctx, records)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{TotalRows: len(records), Errors: []domain.ImportRowError{}}
	if len(rowErrs) > 0 {
		result.Failed = len(rowErrs)
		result.Errors = rowErrs
		s.log.InfoContext(ctx, "import rejected",
			slog.Int("total_rows", result.TotalRows),
			slog.Int("failed", result.Failed),
		)
		return result, nil
	}

	if err := s.persist(ctx, rows); err != nil {
		return nil, err
	}
	result.Created = len(rows)

	s.log.InfoContext(ctx, "import completed", slog.Int("created", result.Created))
	return result, nil
}

// validate checks every record independently and returns the valid rows
// with their assignees resolved, plus the row errors in row order.
func (s *Service) validate(ctx context.Context, records []record) ([]parsedRow, []domain.ImportRowError, error) {
	var (
		rows    []parsedRow
		rowErrs []domain.ImportRowError
		emails  []string
	)

	for i, rec := range records {
		rowNumber := i + firstDataRow

		title := strings.TrimSpace(rec[colTitle])
		if title == "" {
			rowErrs = append(rowErrs, domain.ImportRowError{RowNumber: rowNumber, Reason: ReasonTitleRequired})
			continue
		}
		if utf8.RuneCountInString(title) > domain.MaxTitleLength {
			rowErrs = append(rowErrs, domain.ImportRowError{RowNumber: rowNumber, Reason: ReasonTitleTooLong})
			continue
		}

		var status *domain.IssueStatus
		if raw := strings.TrimSpace(rec[colStatus]); raw != "" {
			st, ok := domain.ParseIssueStatus(raw)
			if !ok {
				rowErrs = append(rowErrs, domain.ImportRowError{RowNumber: rowNumber, Reason: ReasonInvalidStatus})
				continue
			}
			status = &st
		}

		row := parsedRow{
			rowNumber: rowNumber,
			title:     title,
			status:    status,
			email:     strings.TrimSpace(rec[colAssigneeEmail]),
			labels:    splitLabels(rec[colLabels]),
		}
		if desc := strings.TrimSpace(rec[colDescription]); desc != "" {
			row.description = &desc
		}
		if row.email != "" {
			emails = append(emails, row.email)
		}
		rows = append(rows, row)
	}

	users, err := s.users.GetByEmails(ctx, emails)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve assignees: %w", err)
	}

	valid := rows[:0]
	for _, row := range rows {
		if row.email != "" {
			u, ok := users[row.email]
			if !ok {
				rowErrs = append(rowErrs, domain.ImportRowError{RowNumber: row.rowNumber, Reason: ReasonAssigneeMissing})
				continue
			}
			row.assigneeID = &u.ID
		}
		if hasLongLabel(row.labels) {
			rowErrs = append(rowErrs, domain.ImportRowError{RowNumber: row.rowNumber, Reason: ReasonLabelTooLong})
			continue
		}
		valid = append(valid, row)
	}

	slices.SortFunc(rowErrs, func(a, b domain.ImportRowError) int {
		return cmp.Compare(a.RowNumber, b.RowNumber)
	})
	return valid, rowErrs, nil
}

func hasLongLabel(names []string) bool {
	for _, n := range names {
		if utf8.RuneCountInString(n) > domain.MaxLabelLength {
			return true
		}
	}
	return false
}

// persist creates all rows in one transaction. Labels are resolved once for
// the whole file so rows naming the same label share it.
func (s *Service) persist(ctx context.Context, rows []parsedRow) error {
	var names []string
	for _, row := range rows {
		names = append(names, row.labels...)
	}
	names = domain.NormalizeLabelNames(names)

	now := s.now()
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		labelIDs := make(map[string]int64, len(names))
		if len(names) > 0 {
			labels, err := s.labels.GetOrCreate(txCtx, names)
			if err != nil {
				return fmt.Errorf("get or create labels: %w", err)
			}
			for _, l := range labels {
				labelIDs[l.Name] = l.ID
			}
		}

		events := make([]domain.IssueEvent, 0, len(rows))
		for _, row := range rows {
			issue := domain.NewIssue(domain.NewIssueParams{
				Title:       row.title,
				Description: row.description,
				Status:      row.status,
				AssigneeID:  row.assigneeID,
			}, now)
			if err := s.issues.Create(txCtx, issue); err != nil {
				return fmt.Errorf("create issue from row %d: %w", row.rowNumber, err)
			}

			if len(row.labels) > 0 {
				ids := make([]int64, len(row.labels))
				for i, name := range row.labels {
					ids[i] = labelIDs[name]
				}
				if err := s.labels.Attach(txCtx, issue.ID, ids); err != nil {
					return fmt.Errorf("attach labels to row %d: %w", row.rowNumber, err)
				}
			}

			events = append(events, domain.IssueEvent{
				IssueID:   issue.ID,
				EventType: domain.EventIssueCreated,
				Payload: map[string]any{
					"status":      issue.Status.String(),
					"assignee_id": issue.AssigneeID,
				},
				CreatedAt: now,
			})
		}

		return s.events.AppendMany(txCtx, events)
	})
}
