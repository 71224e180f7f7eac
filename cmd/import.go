package cmd

import (
	"context"
	"fmt"

	"surf-atlas/core/config"
	"surf-atlas/core/database"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"
	"surf-atlas/core/table"
	"surf-atlas/feature/breaks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	importFile string
)

// importCmd loads a merged CSV into the break catalogue.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a merged CSV into the break catalogue",
	Long: `Import surf breaks from a CSV file into the database. Rows are keyed by
name and country; re-importing updates existing records in place. Merged
files with suffixed columns are understood, and the primary source wins
where both sources carry a value.

Examples:
  # Import the default merged artifact
  import

  # Import an explicit file
  import --file data/merged_surf_breaks.csv`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "CSV to import (defaults to the merged artifact)")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
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

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	file := importFile
	if file == "" {
		file = cfg.Pipeline.Path(pipeline.MergedFile)
	}

	t, err := table.ReadFile(file)
	if err != nil {
		return err
	}

	service := breaks.NewService(db, l)
	count, err := service.Import(ctx, t, cfg.Pipeline.LeftSuffix, cfg.Pipeline.RightSuffix)
	if err != nil {
		return fmt.Errorf("failed to import breaks: %w", err)
	}

	l.Info("Import complete", zap.String("file", file), zap.Int("breaks", count))
	return nil
}
