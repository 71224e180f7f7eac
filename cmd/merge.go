package cmd

import (
	"context"
	"fmt"

	"surf-atlas/core/config"
	"surf-atlas/core/database"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"
	"surf-atlas/core/reconcile"
	"surf-atlas/feature/runs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the merge command
	mergeSource1 string
	mergeSource2 string
)

// mergeCmd reconciles two standardized CSV files into one merged table.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge two standardized surf break files",
	Long: `Merge two standardized CSV files into merged_surf_breaks.csv. Rows are
paired by country and fuzzy name matching, in three passes: name against
name, name against alternative name, and alternative name against name.
Rows left unpaired go to source1_unmatched.csv and source2_unmatched.csv.

When a database is configured the merge counters are recorded as a run
report; without one the merge still runs, only the report is skipped.

Examples:
  # Merge the default standardized artifacts
  merge

  # Merge explicit files
  merge --source1 data/a_standardized.csv --source2 data/b_standardized.csv`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeSource1, "source1", "", "Primary standardized CSV (defaults to the scraped artifact)")
	mergeCmd.Flags().StringVar(&mergeSource2, "source2", "", "Second standardized CSV (defaults to the additional source artifact)")

	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	source1 := mergeSource1
	if source1 == "" {
		source1 = cfg.Pipeline.Path(pipeline.StandardizedFile)
	}
	source2 := mergeSource2
	if source2 == "" {
		source2 = cfg.Pipeline.Path(pipeline.SecondStandardizedFile)
	}

	runner := pipeline.NewRunner(cfg.Pipeline, l)
	outcome, err := runner.MergeFiles(source1, source2)
	if err != nil {
		return err
	}

	printMergeStats(outcome.Result.Stats)
	recordRun(ctx, l, cfg, outcome)
	return nil
}

// printMergeStats prints the human-readable summary block of one merge.
func printMergeStats(stats reconcile.Stats) {
	fmt.Println("\nMerge Statistics:")
	fmt.Printf("direct_matches: %d\n", stats.DirectMatches)
	fmt.Printf("name_alt_matches: %d\n", stats.NameAltMatches)
	fmt.Printf("alt_name_matches: %d\n", stats.AltNameMatches)
	fmt.Printf("total_merged: %d\n", stats.TotalMerged)
	fmt.Printf("source1_unmatched: %d\n", stats.Source1Unmatched)
	fmt.Printf("source2_unmatched: %d\n", stats.Source2Unmatched)
}

// recordRun persists a run report for one merge. A missing database only
// costs the report, not the merge, so failures are logged and swallowed.
func recordRun(ctx context.Context, l *zap.Logger, cfg *config.Config, outcome *pipeline.MergeOutcome) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Database unavailable, run report not recorded", zap.Error(err))
		return
	}

	store := runs.NewStore(db)
	if err := store.Migrate(); err != nil {
		l.Warn("Failed to migrate run reports", zap.Error(err))
		return
	}

	report := runs.ReportFromStats(outcome.Result.Stats, outcome.Source1Rows, outcome.Source2Rows)
	report.StartedAt = outcome.StartedAt
	report.FinishedAt = outcome.FinishedAt
	report.MergedPath = outcome.MergedPath

	if err := store.Create(ctx, &report); err != nil {
		l.Warn("Failed to record run report", zap.Error(err))
		return
	}

	l.Info("Run report recorded", zap.String("run_id", report.ID))
}
