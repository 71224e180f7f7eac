// Package reconcile merges two surf break tables into one reconciled
// dataset.
//
// Matching runs in three ordered passes over (normalized name, standardized
// country) keys: direct name to name, then source1 name against source2
// alternative name, then source1 alternative name against source2 name.
// Each pass only sees rows no earlier pass consumed, and every row joins at
// most one row from the other table. Within a key group rows pair off
// first-come first-served in source order, which keeps the output
// deterministic across runs.
//
// The engine never mutates its input tables and never writes files. Callers
// receive the merged table plus per-pass statistics, and can derive the
// leftover tables with Unmatched.
package reconcile
