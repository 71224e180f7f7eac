package reconcile

import (
	"surf-atlas/core/table"
)

// Unmatched computes each source's leftover rows: those whose normalized
// name does not appear in the merged table's name column for that side.
// The exclusion key is the name alone, not (name, country), so a row can be
// excluded even though its own country never matched anything. The counts
// in Stats are the per-side accounting; these tables are the rows worth a
// second look.
//
// Row order and columns of the sources are preserved.
func Unmatched(source1, source2, merged *table.Table, opts Options) (*table.Table, *table.Table) {
	left := filterUnmatched(source1, merged, opts.NameColumn+opts.LeftSuffix, opts)
	right := filterUnmatched(source2, merged, opts.NameColumn+opts.RightSuffix, opts)
	return left, right
}

func filterUnmatched(source, merged *table.Table, mergedColumn string, opts Options) *table.Table {
	// Merged tables built by Merge always suffix the name column, but a
	// table read back from disk may carry a plain one.
	if !merged.HasColumn(mergedColumn) {
		mergedColumn = opts.NameColumn
	}

	matched := map[string]bool{}
	for _, row := range merged.Rows {
		if key := NormalizeName(row[mergedColumn]); key != "" {
			matched[key] = true
		}
	}

	columns := append([]string{}, source.Columns...)
	leftover := table.New(columns...)
	for _, row := range source.Rows {
		if !matched[NormalizeName(row[opts.NameColumn])] {
			leftover.Append(row)
		}
	}
	return leftover
}
