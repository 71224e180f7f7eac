package reconcile

import (
	"fmt"

	"surf-atlas/core/countries"
	"surf-atlas/core/table"
)

// Engine reconciles two break tables. It standardizes countries and
// normalizes names itself when building match keys, so callers may hand it
// raw or pre-standardized tables interchangeably.
type Engine struct {
	std  *countries.Standardizer
	opts Options
}

// NewEngine creates an engine using the given standardizer and options.
func NewEngine(std *countries.Standardizer, opts Options) *Engine {
	return &Engine{
		std:  std,
		opts: opts,
	}
}

// rowKeys holds the transient match keys for one row. The zero value marks
// a row that never participates in matching.
type rowKeys struct {
	name    string
	alt     string
	country string
}

// matchKey is the hash-join key of a single pass.
type matchKey struct {
	name    string
	country string
}

// Merge reconciles source1 against source2 in three ordered passes: direct
// name to name, source1 name to source2 alternative name, then source1
// alternative name to source2 name. Later passes only see rows earlier
// passes left unconsumed. The merged table lists pass 1 matches first, then
// pass 2, then pass 3, each in source1 order.
//
// A table missing the name or country column is a configuration error.
// Rows with missing values are not: they are excluded from matching and
// surface in the unmatched counts instead.
func (e *Engine) Merge(source1, source2 *table.Table) (*Result, error) {
	for _, col := range []string{e.opts.NameColumn, e.opts.CountryColumn} {
		if !source1.HasColumn(col) {
			return nil, fmt.Errorf("source1 table is missing the %q column", col)
		}
		if !source2.HasColumn(col) {
			return nil, fmt.Errorf("source2 table is missing the %q column", col)
		}
	}

	keys1 := e.computeKeys(source1)
	keys2 := e.computeKeys(source2)

	rem1 := make([]int, source1.Len())
	for i := range rem1 {
		rem1[i] = i
	}
	rem2 := make([]int, source2.Len())
	for i := range rem2 {
		rem2[i] = i
	}

	name := func(k rowKeys) string { return k.name }
	alt := func(k rowKeys) string { return k.alt }

	direct, rem1, rem2 := matchPass(keys1, keys2, rem1, rem2, name, name)
	nameAlt, rem1, rem2 := matchPass(keys1, keys2, rem1, rem2, name, alt)
	altName, _, _ := matchPass(keys1, keys2, rem1, rem2, alt, name)

	shared := sharedColumns(source1, source2)
	merged := table.New(mergedColumns(source1, source2, shared, e.opts)...)
	appendPairs := func(pairs [][2]int) {
		for _, p := range pairs {
			merged.Append(e.mergeRow(source1, source2, shared, p[0], p[1]))
		}
	}
	appendPairs(direct)
	appendPairs(nameAlt)
	appendPairs(altName)

	stats := Stats{
		DirectMatches:    len(direct),
		NameAltMatches:   len(nameAlt),
		AltNameMatches:   len(altName),
		TotalMerged:      merged.Len(),
		Source1Unmatched: source1.Len() - merged.Len(),
		Source2Unmatched: source2.Len() - merged.Len(),
	}

	return &Result{Merged: merged, Stats: stats}, nil
}

// computeKeys derives the match keys for every row. A row with an empty
// name or country key gets zero keys and is excluded from all passes. When
// the table has no alternative-name column, the alternative key falls back
// to the primary name key.
func (e *Engine) computeKeys(t *table.Table) []rowKeys {
	hasAlt := t.HasColumn(e.opts.AltNameColumn)

	keys := make([]rowKeys, t.Len())
	for i, row := range t.Rows {
		name := NormalizeName(row[e.opts.NameColumn])
		country := e.std.Standardize(row.String(e.opts.CountryColumn))
		if name == "" || country == "" {
			continue
		}

		alt := name
		if hasAlt {
			alt = NormalizeName(row[e.opts.AltNameColumn])
		}

		keys[i] = rowKeys{name: name, alt: alt, country: country}
	}
	return keys
}

// matchPass hash-joins the remaining rows of both sides on (key, country).
// Rows sharing a key pair off first-come first-served in source order, so
// every row is consumed at most once. Empty keys never match.
func matchPass(keys1, keys2 []rowKeys, rem1, rem2 []int, leftKey, rightKey func(rowKeys) string) (pairs [][2]int, nextRem1, nextRem2 []int) {
	candidates := map[matchKey][]int{}
	for _, j := range rem2 {
		key := rightKey(keys2[j])
		if key == "" {
			continue
		}
		mk := matchKey{name: key, country: keys2[j].country}
		candidates[mk] = append(candidates[mk], j)
	}

	consumed := map[int]bool{}
	for _, i := range rem1 {
		key := leftKey(keys1[i])
		mk := matchKey{name: key, country: keys1[i].country}
		if queue := candidates[mk]; key != "" && len(queue) > 0 {
			j := queue[0]
			candidates[mk] = queue[1:]
			consumed[j] = true
			pairs = append(pairs, [2]int{i, j})
			continue
		}
		nextRem1 = append(nextRem1, i)
	}

	for _, j := range rem2 {
		if !consumed[j] {
			nextRem2 = append(nextRem2, j)
		}
	}

	return pairs, nextRem1, nextRem2
}

// sharedColumns returns the set of column names present in both tables.
func sharedColumns(source1, source2 *table.Table) map[string]bool {
	shared := map[string]bool{}
	for _, c := range source1.Columns {
		if source2.HasColumn(c) {
			shared[c] = true
		}
	}
	return shared
}

// mergedColumns lays out the merged schema: source1 columns first, then
// source2 columns, suffixing only the names both sides carry.
func mergedColumns(source1, source2 *table.Table, shared map[string]bool, opts Options) []string {
	cols := make([]string, 0, len(source1.Columns)+len(source2.Columns))
	for _, c := range source1.Columns {
		if shared[c] {
			cols = append(cols, c+opts.LeftSuffix)
		} else {
			cols = append(cols, c)
		}
	}
	for _, c := range source2.Columns {
		if shared[c] {
			cols = append(cols, c+opts.RightSuffix)
		} else {
			cols = append(cols, c)
		}
	}
	return cols
}

// mergeRow concatenates one row from each side into a merged row, keeping
// the original cell values untouched.
func (e *Engine) mergeRow(source1, source2 *table.Table, shared map[string]bool, i, j int) table.Row {
	out := table.Row{}
	for _, c := range source1.Columns {
		name := c
		if shared[c] {
			name = c + e.opts.LeftSuffix
		}
		out[name] = source1.Rows[i][c]
	}
	for _, c := range source2.Columns {
		name := c
		if shared[c] {
			name = c + e.opts.RightSuffix
		}
		out[name] = source2.Rows[j][c]
	}
	return out
}
