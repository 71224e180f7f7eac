package cmd

import (
	"context"
	"fmt"
	"os"

	"surf-atlas/core/config"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"
	"surf-atlas/core/scrape"
	"surf-atlas/core/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the pipeline command
	pipelineSkipBreaks      bool
	pipelineSkipDetails     bool
	pipelineSkipStandardize bool
	pipelineSkipMerge       bool
	pipelineSecondSource    string
)

// pipelineCmd runs every pipeline stage in order.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full pipeline from scrape to merge",
	Long: `Run every pipeline stage in order: scrape the listing, scrape detail
pages, standardize country names, and merge with an optional second source.
Stages can be skipped when their artifacts already exist; a skipped stage's
output must still be present for the next stage to run.

Without a second source the standardized records are promoted to the merged
artifact unchanged.

Examples:
  # Everything from scratch
  pipeline

  # Reuse previously scraped files
  pipeline --skip-breaks --skip-details

  # Merge against a second source
  pipeline --skip-breaks --skip-details --second-source data/additional_source_complete.csv`,
	RunE: runPipeline,
}

func init() {
	pipelineCmd.Flags().BoolVar(&pipelineSkipBreaks, "skip-breaks", false, "Skip scraping the listing")
	pipelineCmd.Flags().BoolVar(&pipelineSkipDetails, "skip-details", false, "Skip scraping detail pages")
	pipelineCmd.Flags().BoolVar(&pipelineSkipStandardize, "skip-standardize", false, "Skip country standardization")
	pipelineCmd.Flags().BoolVar(&pipelineSkipMerge, "skip-merge", false, "Skip the merge stage")
	pipelineCmd.Flags().StringVar(&pipelineSecondSource, "second-source", "", "Raw second-source CSV to standardize and merge against")

	RootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
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

	secondSource := pipelineSecondSource
	if secondSource == "" {
		secondSource = cfg.Pipeline.SecondSource
	}

	listPath := cfg.Pipeline.Path(pipeline.ListFile)
	completePath := cfg.Pipeline.Path(pipeline.CompleteFile)
	standardizedPath := cfg.Pipeline.Path(pipeline.StandardizedFile)
	secondStandardizedPath := cfg.Pipeline.Path(pipeline.SecondStandardizedFile)

	scraper := scrape.New(cfg.Scraper, l)
	runner := pipeline.NewRunner(cfg.Pipeline, l)

	// Stage 1: scrape the listing
	if pipelineSkipBreaks {
		l.Info("Skipping surf break listing")
	} else {
		listing, err := scraper.ScrapeList(ctx)
		if err != nil {
			return fmt.Errorf("failed to scrape listing: %w", err)
		}
		if err := listing.WriteFile(listPath); err != nil {
			return err
		}
		l.Info("Listing written", zap.String("file", listPath), zap.Int("rows", listing.Len()))
	}

	// Stage 2: scrape detail pages
	if pipelineSkipDetails {
		l.Info("Skipping break details")
	} else {
		if _, err := os.Stat(listPath); err != nil {
			return fmt.Errorf("%s not found, run the pipeline without --skip-breaks first", listPath)
		}
		listing, err := table.ReadFile(listPath)
		if err != nil {
			return err
		}

		complete, err := scraper.ScrapeDetails(ctx, listing)
		if err != nil {
			return fmt.Errorf("failed to scrape details: %w", err)
		}
		if err := complete.WriteFile(completePath); err != nil {
			return err
		}
		l.Info("Complete records written", zap.String("file", completePath), zap.Int("rows", complete.Len()))
	}

	// Stage 3: standardize country names
	if pipelineSkipStandardize {
		l.Info("Skipping country standardization")
	} else {
		if _, err := os.Stat(completePath); err != nil {
			return fmt.Errorf("%s not found, run the pipeline without --skip-details first", completePath)
		}
		if err := runner.StandardizeFile(completePath, standardizedPath, "country"); err != nil {
			return err
		}

		if secondSource != "" {
			if _, err := os.Stat(secondSource); err != nil {
				l.Warn("Second source not found, skipping its standardization", zap.String("file", secondSource))
			} else if err := runner.StandardizeFile(secondSource, secondStandardizedPath, "country"); err != nil {
				return err
			}
		}
	}

	// Stage 4: merge
	if pipelineSkipMerge {
		l.Info("Skipping merge")
		return nil
	}
	if _, err := os.Stat(standardizedPath); err != nil {
		return fmt.Errorf("%s not found, run the pipeline without --skip-standardize first", standardizedPath)
	}

	if secondSource != "" {
		if _, err := os.Stat(secondStandardizedPath); err == nil {
			outcome, err := runner.MergeFiles(standardizedPath, secondStandardizedPath)
			if err != nil {
				return err
			}
			printMergeStats(outcome.Result.Stats)
			recordRun(ctx, l, cfg, outcome)
			return nil
		}
		l.Warn("Standardized second source not found, falling back to a single source",
			zap.String("file", secondStandardizedPath))
	}

	_, err = runner.PromoteSingleSource(standardizedPath)
	return err
}
