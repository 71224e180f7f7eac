// Package middleware groups the HTTP middleware mounted in front of the
// Surf Atlas API handlers.
//
// # Components
//
//   - rayid: Tags every request with a generated ray id, stored in the
//     request locals and echoed in the X-Ray-ID response header so log
//     lines can be correlated with client reports.
//   - auth: Validates the X-API-Key header against the configured key.
//     An empty configured key disables the check.
//
// The start command registers rayid before the request logger so every log
// line carries the id, and auth after the swagger routes so the API
// documentation stays reachable without a key.
package middleware
