// SPDX-License-Identifier: MIT

// Package csvio moves tables in and out of CSV with a header row.
//
// Column kinds are inferred per column on read: int64 when every cell is
// an integer, float64 when every non-empty cell is a number (empty cells
// become NaN so downstream validation rejects them), string otherwise.
// WithKind pins a column's kind when inference would guess wrong.
package csvio
