// SPDX-License-Identifier: MIT

// Package week maps (day name, clock time) pairs onto a single weekly
// timeline measured in seconds.
//
// Timeline:
//
//	Monday 00:00:00 = 0 … Sunday 23:59:59 = 604799; Cycle = 604800.
//
// A record that ends at clock second e covers e itself, so callers that
// need half-open spans use [start, end+1).
//
// Parsing is strict: unknown day names and clocks that are not "15:04:05"
// fail with *ParseError, which errors.Is ErrParse. Nothing is defaulted.
package week
