package cmd

import (
	"context"
	"fmt"

	"surf-atlas/core/config"
	"surf-atlas/core/database"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"
	"surf-atlas/core/table"
	"surf-atlas/feature/runs"
	"surf-atlas/feature/runs/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the export command
	exportFormat string
	exportRun    string
	exportOut    string
)

// exportCmd renders the merged artifact to a report file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the merged breaks as xlsx, csv or json",
	Long: `Export the merged surf breaks to a report file. The xlsx and json formats
embed the counters of the matching run report when one is recorded; csv
writes the plain table.

Examples:
  # Spreadsheet with the latest run's counters
  export --format xlsx

  # JSON for a specific run
  export --format json --run 6a1f0c9e-...

  # Plain CSV to an explicit path
  export --format csv --out /tmp/breaks.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format: xlsx, csv or json")
	exportCmd.Flags().StringVar(&exportRun, "run", "", "Run report ID to embed (defaults to the latest)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to the data directory)")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	format, err := runs.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	merged, err := table.ReadFile(cfg.Pipeline.Path(pipeline.MergedFile))
	if err != nil {
		return err
	}

	report, err := exportReport(ctx, l, cfg)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = cfg.Pipeline.Path("merged_surf_breaks." + string(format))
	}

	return runs.NewExporter(l).Export(format, out, report, merged)
}

// exportReport resolves the run report to embed. An explicit --run must
// exist; otherwise the latest report is used when a database is reachable.
func exportReport(ctx context.Context, l *zap.Logger, cfg *config.Config) (*models.RunReport, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		if exportRun != "" {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		l.Warn("Database unavailable, exporting without a run report", zap.Error(err))
		return nil, nil
	}

	store := runs.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate run reports: %w", err)
	}

	if exportRun != "" {
		report, err := store.Get(ctx, exportRun)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, fmt.Errorf("run %s not found", exportRun)
		}
		return report, nil
	}

	return store.Latest(ctx)
}
