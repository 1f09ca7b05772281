package domain

import "strings"

// MaxLabelLength is the longest label name, in characters.
const MaxLabelLength = 100

// Label is a named tag shared between issues.
type Label struct {
	ID   int64
	Name string
}

// NormalizeLabelNames trims names, drops empty ones and collapses duplicates,
// keeping the first occurrence.
func NormalizeLabelNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
