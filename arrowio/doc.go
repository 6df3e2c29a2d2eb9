// SPDX-License-Identifier: MIT

// Package arrowio converts tables to Apache Arrow records and writes them
// as Arrow IPC files, so pipeline outputs can be opened by pandas, polars
// or DuckDB without re-parsing CSV.
//
// Kind mapping: int → int64, float → float64, string → utf8, bool → boolean.
// Columns are never nullable.
package arrowio
