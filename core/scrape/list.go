package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"surf-atlas/core/table"
)

// Scraper walks the source site and produces break tables for the pipeline.
type Scraper struct {
	client *Client
	cfg    Config
	logg   *zap.Logger
}

// New creates a Scraper from the configuration.
func New(cfg Config, logg *zap.Logger) *Scraper {
	return &Scraper{
		client: NewClient(cfg),
		cfg:    cfg,
		logg:   logg,
	}
}

// ScrapeList walks the listing pages and collects the name, link, and
// country of every surf break. A page that fails to load is logged and
// skipped; only cancellation aborts the walk.
func (s *Scraper) ScrapeList(ctx context.Context) (*table.Table, error) {
	if s.cfg.BaseURL == "" {
		return nil, fmt.Errorf("scraper base URL is not configured")
	}

	pages := s.cfg.Pages
	if pages <= 0 {
		pages = 1
	}

	breaks := table.New("name", "link", "country")
	for page := 1; page <= pages; page++ {
		url := fmt.Sprintf("%s/breaks?page=%d", s.cfg.BaseURL, page)

		doc, err := s.client.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logg.Warn("Failed to scrape listing page", zap.Int("page", page), zap.Error(err))
			continue
		}

		doc.Find("td").Each(func(_ int, td *goquery.Selection) {
			a := td.Find("a").First()
			rem := td.Find("span.rem").First()
			if a.Length() == 0 || rem.Length() == 0 {
				return
			}

			link, _ := a.Attr("href")
			breaks.Append(table.Row{
				"name":    strings.TrimSpace(a.Text()),
				"link":    link,
				"country": strings.TrimSpace(rem.Text()),
			})
		})
	}

	s.logg.Info("Scraped surf break list", zap.Int("breaks", breaks.Len()))
	return breaks, nil
}
