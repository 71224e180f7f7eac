// Package countries standardizes free-form country strings to canonical
// names. Scraped sources disagree on spellings, abbreviations, and political
// naming; this package resolves them through a fixed override map backed by
// the gountries reference data so that every pipeline stage joins on the
// same country values.
package countries
