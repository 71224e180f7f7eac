// Package pipeline names the data-directory artifacts and runs the
// file-level stages between them: country standardization of a CSV, the
// two-source merge with its leftover tables, and the single-source
// fallback that promotes the primary source when no second source exists.
//
// The runner works purely on files; scraping lives in core/scrape and the
// commands wire the two together.
package pipeline
