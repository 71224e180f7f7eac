package table

import (
	"surf-atlas/core/utils"
)

// Row holds a single record keyed by column name. Values are kept as any so
// scraped strings and typed values can coexist in one table.
type Row map[string]any

// String returns the row value for column rendered as a string. Missing
// values render as the empty string.
func (r Row) String(column string) string {
	return utils.ToString(r[column])
}

// Table is an ordered collection of rows sharing a column set. Column order
// and row order are preserved across reads, transforms, and writes.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{
		Columns: columns,
		Rows:    []Row{},
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the table's column set if not already present.
// Existing rows are left untouched; they render the new column as empty.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Append adds rows to the end of the table.
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}
