// SPDX-License-Identifier: MIT

// Package coverage decides, per (id, id_2) group, whether a set of weekly
// intervals covers the whole week without a gap.
//
// Each record [start, end] is placed on the week timeline (package week)
// and becomes the half-open span [start, end+1), since the end second is
// covered. The timeline runs Monday to Sunday without wrapping: a record
// whose end precedes its start is malformed and fails the check with
// ErrReversedInterval.
//
// Spans are sorted by start and merged when they overlap or touch. A group
// is complete iff the merge yields exactly one span [0, Cycle). Summing
// durations is never enough: two records covering Monday twice add up to
// the right total and still leave a gap.
package coverage
