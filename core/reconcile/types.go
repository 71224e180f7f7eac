package reconcile

import (
	"surf-atlas/core/table"
)

// Options names the columns and suffixes the engine works with. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	// NameColumn and CountryColumn are mandatory on both input tables.
	NameColumn    string
	CountryColumn string

	// AltNameColumn is optional per table. A table without it uses its
	// primary name as the alternative name.
	AltNameColumn string

	// LeftSuffix and RightSuffix disambiguate column names that appear in
	// both sources. Columns unique to one source pass through unsuffixed.
	LeftSuffix  string
	RightSuffix string
}

// DefaultOptions returns the column names used by the scraped datasets.
func DefaultOptions() Options {
	return Options{
		NameColumn:    "name",
		CountryColumn: "country",
		AltNameColumn: "Alternative name",
		LeftSuffix:    "_source1",
		RightSuffix:   "_source2",
	}
}

// Stats reports what each pass contributed. The unmatched counts are
// computed as table length minus merged length per side; with single
// pairing per row that equals the number of unconsumed rows, but it is
// coarser than the leftover tables Unmatched produces, which exclude rows
// by name key alone.
type Stats struct {
	DirectMatches    int `json:"direct_matches"`
	NameAltMatches   int `json:"name_alt_matches"`
	AltNameMatches   int `json:"alt_name_matches"`
	TotalMerged      int `json:"total_merged"`
	Source1Unmatched int `json:"source1_unmatched"`
	Source2Unmatched int `json:"source2_unmatched"`
}

// Result bundles the merged table with the statistics of the run that
// produced it.
type Result struct {
	Merged *table.Table
	Stats  Stats
}
