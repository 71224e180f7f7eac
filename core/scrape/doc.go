// Package scrape collects surf break data from the source site.
//
// The scraper runs in two stages. ScrapeList walks the paginated break index
// and yields one row per break with its name, detail link, and country.
// ScrapeDetails then visits each detail page concurrently and fills in the
// descriptive attributes (region, break type, rating, swell and wind
// directions, seasonal information, and free-text summaries).
//
// All requests share one rate limiter, and every field extractor degrades to
// an empty string when the expected markup is missing. Scraping is fragile
// by nature; the contract here is "rows of raw strings, best effort", and
// data quality is dealt with downstream by the standardizer and the
// reconciliation engine.
package scrape
