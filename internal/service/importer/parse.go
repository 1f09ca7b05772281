package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Column names every import file must carry. Order is free and extra
// columns are ignored.
const (
	colTitle         = "title"
	colDescription   = "description"
	colStatus        = "status"
	colAssigneeEmail = "assignee_email"
	colLabels        = "labels"
)

var requiredColumns = []string{colTitle, colDescription, colStatus, colAssigneeEmail, colLabels}

const labelSeparator = ";"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// errMissingColumns means the header row is absent or incomplete.
var errMissingColumns = errors.New("missing required columns")

// record is one data row keyed by required column name.
type record map[string]string

// parseCSV splits data into records. Blank lines are skipped. Short rows
// yield empty values for the missing columns.
func parseCSV(data []byte) ([]record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errMissingColumns
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errMissingColumns
		}
	}

	var records []record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := make(record, len(requiredColumns))
		for _, col := range requiredColumns {
			if i := index[col]; i < len(fields) {
				rec[col] = fields[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// splitLabels splits a labels cell on ';', trims each entry, drops empty
// ones and collapses duplicates keeping the first occurrence.
func splitLabels(raw string) []string {
	return domain.NormalizeLabelNames(strings.Split(raw, labelSeparator))
}
