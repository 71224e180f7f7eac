package countries

import (
	"fmt"
	"strings"

	"surf-atlas/core/table"
)

// Standardizer maps free-form country strings to canonical names. Resolution
// order is fixed: cleaned input, override map, reference by name, reference
// by alt name, and finally the cleaned input itself. The function is total
// and idempotent, so already standardized values pass through unchanged.
type Standardizer struct {
	overrides map[string]string
	ref       Reference
}

// NewStandardizer creates a Standardizer with the given override map and
// reference data set.
func NewStandardizer(overrides map[string]string, ref Reference) *Standardizer {
	return &Standardizer{
		overrides: overrides,
		ref:       ref,
	}
}

// Standardize returns the canonical name for a raw country string. Inputs
// that resolve nowhere are returned cleaned rather than rejected, so callers
// never lose rows to unknown countries.
func (s *Standardizer) Standardize(raw string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))

	if out, ok := s.overrides[cleaned]; ok {
		return out
	}
	if out, ok := s.ref.ByName(cleaned); ok {
		return out
	}
	if out, ok := s.ref.ByAltName(cleaned); ok {
		return out
	}
	return cleaned
}

// StandardizeColumn rewrites every value of the named column in place.
func (s *Standardizer) StandardizeColumn(t *table.Table, column string) error {
	if !t.HasColumn(column) {
		return fmt.Errorf("table has no %q column", column)
	}
	for _, row := range t.Rows {
		row[column] = s.Standardize(row.String(column))
	}
	return nil
}
