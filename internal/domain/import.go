package domain

// ImportRowError reports why a CSV row was rejected. Row numbers count the
// header as row 1.
type ImportRowError struct {
	RowNumber int
	Reason    string
}

// ImportResult summarizes a CSV import. Created is either 0 or TotalRows.
type ImportResult struct {
	TotalRows int
	Created   int
	Failed    int
	Errors    []ImportRowError
}

// Succeeded reports whether the import persisted its rows.
func (r ImportResult) Succeeded() bool {
	return r.Failed == 0 && len(r.Errors) == 0
}
