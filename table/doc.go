// SPDX-License-Identifier: MIT

// Package table is the in-memory relation every tollmatrix stage reads and
// produces: an ordered set of named, typed columns of equal length.
//
// What & Why:
//
//	Tables are immutable per step. Derivation (WithColumn) and selection
//	(Select) return NEW tables; the receiver is never touched, so a stage can
//	hand its input to several consumers without defensive copies.
//
// Column kinds:
//
//	KindString, KindInt (int64), KindFloat (float64), KindBool.
//
// Typed access goes through the generic Values[T] accessor; numeric code that
// does not care whether a column was ingested as int or float uses Numbers.
//
// Complexity:
//
//	New/WithColumn: O(w + n) validation; Values: O(n) copy; Select: O(w·n);
//	GroupMean: O(n log n) for the key sort.
package table
