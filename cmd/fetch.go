package cmd

import (
	"context"
	"fmt"

	"surf-atlas/core/config"
	"surf-atlas/core/logger"
	"surf-atlas/core/storage"
	"surf-atlas/feature/runs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the fetch command
	fetchRun string
	fetchOut string
)

// fetchCmd downloads published run artifacts from object storage.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch published run artifacts from object storage",
	Long: `Fetch the artifacts published under runs/<run-id>/ into a local directory,
the inverse of publish. Useful for pulling the merged files of a run that
happened on another machine.

Examples:
  # Fetch the latest run's artifacts into the data directory
  fetch

  # Fetch a specific run somewhere else
  fetch --run 6a1f0c9e-... --out /tmp/run-artifacts`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchRun, "run", "", "Run report ID to fetch (defaults to the latest)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "Destination directory (defaults to the data directory)")

	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
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

	runID, err := resolveRunID(ctx, cfg, fetchRun)
	if err != nil {
		return err
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	dest := fetchOut
	if dest == "" {
		dest = cfg.Pipeline.DataDir
		if dest == "" {
			dest = "data"
		}
	}

	fetcher := runs.NewFetcher(client, cfg.Storage.Bucket, l)
	fetched, err := fetcher.Fetch(ctx, runID, dest)
	if err != nil {
		return err
	}

	l.Info("Artifacts fetched", zap.String("run_id", runID), zap.Int("files", len(fetched)))
	return nil
}
