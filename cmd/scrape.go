package cmd

import (
	"context"
	"fmt"

	"surf-atlas/core/config"
	"surf-atlas/core/logger"
	"surf-atlas/core/pipeline"
	"surf-atlas/core/scrape"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the scrape command
	scrapeSkipDetails bool
)

// scrapeCmd collects surf break records from the configured source site.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape surf breaks from the source site",
	Long: `Scrape the surf break listing pages and, unless skipped, every break's
detail page. The listing goes to surf_breaks_list.csv and the enriched
records to surf_breaks_complete.csv under the data directory.

Examples:
  # Full scrape (listing + detail pages)
  scrape

  # Listing only
  scrape --skip-details`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeSkipDetails, "skip-details", false, "Skip detail pages, only scrape the listing")

	RootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
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

	scraper := scrape.New(cfg.Scraper, l)

	l.Info("Scraping surf break listing", zap.Int("pages", cfg.Scraper.Pages))
	listing, err := scraper.ScrapeList(ctx)
	if err != nil {
		return fmt.Errorf("failed to scrape listing: %w", err)
	}

	listPath := cfg.Pipeline.Path(pipeline.ListFile)
	if err := listing.WriteFile(listPath); err != nil {
		return err
	}
	l.Info("Listing written", zap.String("file", listPath), zap.Int("rows", listing.Len()))

	if scrapeSkipDetails {
		return nil
	}

	l.Info("Scraping break details", zap.Int("breaks", listing.Len()))
	complete, err := scraper.ScrapeDetails(ctx, listing)
	if err != nil {
		return fmt.Errorf("failed to scrape details: %w", err)
	}

	completePath := cfg.Pipeline.Path(pipeline.CompleteFile)
	if err := complete.WriteFile(completePath); err != nil {
		return err
	}
	l.Info("Complete records written", zap.String("file", completePath), zap.Int("rows", complete.Len()))

	return nil
}
