package cmd

import (
	"context"
	"fmt"
	"os"

	"surf-atlas/core/config"
	"surf-atlas/core/database"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"
	"surf-atlas/core/storage"
	"surf-atlas/feature/runs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the publish command
	publishRun     string
	publishReplace bool
)

// publishCmd uploads run artifacts to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish run artifacts to object storage",
	Long: `Publish the merged and unmatched files of a run to object storage under
runs/<run-id>/. The bucket is created when missing. With --replace any
objects already stored under the run's prefix are removed first.

Examples:
  # Publish the latest run's artifacts
  publish

  # Re-publish a specific run from scratch
  publish --run 6a1f0c9e-... --replace`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishRun, "run", "", "Run report ID to publish under (defaults to the latest)")
	publishCmd.Flags().BoolVar(&publishReplace, "replace", false, "Remove previously published objects for the run first")

	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
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

	runID, err := resolveRunID(ctx, cfg, publishRun)
	if err != nil {
		return err
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	files := publishArtifacts(cfg)
	publisher := runs.NewPublisher(client, cfg.Storage.Bucket, l)
	uploaded, err := publisher.Publish(ctx, runID, files, publishReplace)
	if err != nil {
		return err
	}

	l.Info("Artifacts published", zap.String("run_id", runID), zap.Int("objects", len(uploaded)))
	return nil
}

// resolveRunID picks the run to operate on: the explicit flag value when
// given, otherwise the most recent recorded run.
func resolveRunID(ctx context.Context, cfg *config.Config, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return "", fmt.Errorf("no --run given and the database is unreachable: %w", err)
	}

	store := runs.NewStore(db)
	if err := store.Migrate(); err != nil {
		return "", fmt.Errorf("failed to migrate run reports: %w", err)
	}

	report, err := store.Latest(ctx)
	if err != nil {
		return "", err
	}
	if report == nil {
		return "", fmt.Errorf("no run recorded yet, pass --run explicitly")
	}
	return report.ID, nil
}

// publishArtifacts lists the run artifacts present under the data directory.
func publishArtifacts(cfg *config.Config) []string {
	candidates := []string{
		pipeline.MergedFile,
		pipeline.Source1UnmatchedFile,
		pipeline.Source2UnmatchedFile,
		"merged_surf_breaks.xlsx",
		"merged_surf_breaks.json",
	}

	var files []string
	for _, name := range candidates {
		path := cfg.Pipeline.Path(name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	return files
}
