// Package runs implements the run report feature.
//
// Every reconciliation run is recorded as a RunReport row: source sizes,
// per-pass match counters and the artifact path. The package also renders
// reports for humans (xlsx workbook, CSV, JSON) and moves run artifacts to
// and from object storage under runs/<run-id>/.
//
// # Components
//
//   - Store: Persists run reports.
//   - Exporter: Renders a report plus its merged table to a file.
//   - Publisher: Uploads run artifacts to the configured bucket.
//   - Fetcher: Downloads a run's published artifacts.
//   - Service / Handler / Loader: The read-only HTTP surface.
//
// # HTTP Endpoints
//
//   - GET /runs : List recorded runs, newest first.
//   - GET /runs/:id : Get a single run report.
//   - GET /runs/:id/stats : Get a run's merge counters.
package runs
