// Package breaks implements the surf break catalogue feature.
//
// The catalogue is the queryable end of the pipeline: standardized or
// merged tables are imported into the surf_breaks database table, keyed
// by the (name, country) pair so repeated imports update in place.
//
// # Components
//
//   - Store: Persists breaks and maps pipeline tables onto the model,
//     resolving the suffixed column layout merged tables use.
//   - Service: Wraps the store and caches the per-country aggregation.
//   - Handler: Exposes the read-only HTTP endpoints.
//   - Loader: Registers the feature when a database is configured.
//
// # HTTP Endpoints
//
//   - GET /breaks : List breaks, filterable by country and name.
//   - GET /breaks/countries : Count breaks per country.
//   - GET /breaks/:id : Get a single break.
package breaks
