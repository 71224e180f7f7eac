package pipeline

import (
	"path/filepath"

	"surf-atlas/core/reconcile"
)

// Artifact file names under the data directory. The names are part of the
// pipeline's contract: downstream stages and the import command look these
// up by name.
const (
	ListFile               = "surf_breaks_list.csv"
	CompleteFile           = "surf_breaks_complete.csv"
	StandardizedFile       = "surf_breaks_complete_standardized.csv"
	SecondStandardizedFile = "additional_source_complete_standardized.csv"
	MergedFile             = "merged_surf_breaks.csv"
	Source1UnmatchedFile   = "source1_unmatched.csv"
	Source2UnmatchedFile   = "source2_unmatched.csv"
)

// Config controls where pipeline artifacts live and how shared merged
// columns are suffixed.
type Config struct {
	// DataDir is the directory artifacts are read from and written to.
	DataDir string `mapstructure:"data_dir" default:"data"`
	// SecondSource optionally points at the raw second-source CSV.
	SecondSource string `mapstructure:"second_source" default:""`
	// LeftSuffix and RightSuffix disambiguate column names present in both
	// merge inputs.
	LeftSuffix  string `mapstructure:"left_suffix" default:"_source1"`
	RightSuffix string `mapstructure:"right_suffix" default:"_source2"`
}

// Path resolves an artifact name under the data directory.
func (c Config) Path(name string) string {
	dir := c.DataDir
	if dir == "" {
		dir = "data"
	}
	return filepath.Join(dir, name)
}

// Options derives engine options from the configuration, keeping the
// defaults for blank values.
func (c Config) Options() reconcile.Options {
	opts := reconcile.DefaultOptions()
	if c.LeftSuffix != "" {
		opts.LeftSuffix = c.LeftSuffix
	}
	if c.RightSuffix != "" {
		opts.RightSuffix = c.RightSuffix
	}
	return opts
}
