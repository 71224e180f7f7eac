package cmd

import (
	"fmt"

	"surf-atlas/core/config"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"

	"github.com/spf13/cobra"
)

var (
	// Flags for the standardize command
	standardizeIn     string
	standardizeOut    string
	standardizeColumn string
)

// standardizeCmd rewrites a CSV's country column to canonical names.
var standardizeCmd = &cobra.Command{
	Use:   "standardize",
	Short: "Standardize the country column of a CSV file",
	Long: `Standardize country names in a CSV file against the world reference list.
Abbreviations, alternate spellings and close misspellings are rewritten to
the canonical name; values that cannot be resolved are kept as-is.

Defaults read surf_breaks_complete.csv and write
surf_breaks_complete_standardized.csv under the data directory.

Examples:
  # Standardize the scraped records
  standardize

  # Standardize a second source
  standardize --in data/additional_source_complete.csv --out data/additional_source_complete_standardized.csv`,
	RunE: runStandardize,
}

func init() {
	standardizeCmd.Flags().StringVar(&standardizeIn, "in", "", "Input CSV (defaults to the scraped records)")
	standardizeCmd.Flags().StringVar(&standardizeOut, "out", "", "Output CSV (defaults to the standardized artifact)")
	standardizeCmd.Flags().StringVar(&standardizeColumn, "column", "country", "Name of the country column")

	RootCmd.AddCommand(standardizeCmd)
}

func runStandardize(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	in := standardizeIn
	if in == "" {
		in = cfg.Pipeline.Path(pipeline.CompleteFile)
	}
	out := standardizeOut
	if out == "" {
		out = cfg.Pipeline.Path(pipeline.StandardizedFile)
	}

	runner := pipeline.NewRunner(cfg.Pipeline, l)
	return runner.StandardizeFile(in, out, standardizeColumn)
}
