// SPDX-License-Identifier: MIT

// Package threshold selects the keys whose mean value sits within a
// percentage band around a reference key's mean.
//
// Given a long-form table with a key column and a numeric value column:
//
//  1. ref = mean(value | key == reference); no such rows ⇒ ErrNotFound.
//  2. mean per distinct key.
//  3. keep keys with mean ∈ [ref − |ref|·band, ref + |ref|·band] (closed).
//  4. ascending by key.
//
// The reference trivially satisfies its own band and is kept unless
// ExcludeReference is given.
package threshold
