package scrape

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"surf-atlas/core/table"
)

// detailColumns are the attributes scraped from a break's detail page, in
// output column order.
var detailColumns = []string{
	"region",
	"type",
	"rating",
	"reliability",
	"swell_direction",
	"wind_direction",
	"best_month",
	"best_season",
	"summary",
	"time_of_year",
}

// ScrapeDetails visits every break's detail page and returns a new table
// with the detail columns filled in. Input rows are never modified; row
// order is preserved. A break whose page fails to load keeps empty detail
// fields, and the country from the listing is only replaced when the detail
// page names one.
func (s *Scraper) ScrapeDetails(ctx context.Context, breaks *table.Table) (*table.Table, error) {
	if s.cfg.BaseURL == "" {
		return nil, fmt.Errorf("scraper base URL is not configured")
	}

	concurrency := s.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	rows := make([]table.Row, breaks.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, row := range breaks.Rows {
		i, row := i, row
		g.Go(func() error {
			detail := table.Row{}
			for k, v := range row {
				detail[k] = v
			}
			for _, col := range detailColumns {
				detail[col] = ""
			}
			rows[i] = detail

			url := s.cfg.BaseURL + detail.String("link")
			doc, err := s.client.Fetch(ctx, url)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logg.Warn("Failed to fetch break details",
					zap.String("name", detail.String("name")),
					zap.Error(err),
				)
				return nil
			}

			if country := extractCountry(doc); country != "" {
				detail["country"] = country
			}
			detail["region"] = extractRegion(doc)
			detail["type"] = extractType(doc)
			detail["rating"] = extractRating(doc)
			detail["reliability"] = extractReliability(doc)
			detail["swell_direction"], detail["wind_direction"] = extractDirections(doc)
			detail["best_month"], detail["best_season"] = extractBestMonth(doc)
			detail["summary"] = extractSummary(doc)
			detail["time_of_year"] = extractTimeOfYear(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := table.New(append([]string{}, breaks.Columns...)...)
	for _, col := range detailColumns {
		out.AddColumn(col)
	}
	out.Append(rows...)

	s.logg.Info("Scraped break details", zap.Int("breaks", out.Len()))
	return out, nil
}
