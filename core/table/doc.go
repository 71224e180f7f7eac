// Package table provides a lightweight in-memory representation of tabular
// data together with CSV reading and writing helpers. Tables preserve column
// order and row order, which the pipeline stages rely on when producing
// deterministic output files.
package table
