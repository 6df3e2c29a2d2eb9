// SPDX-License-Identifier: MIT

// Package rates prices long-form distance rows per vehicle category in three
// ordered, multiplicative layers:
//
//	Layer 1  category:    c_k = round(distance × coefficient_k, 1)
//	Layer 2  time window: c_k × window factor (by the row's start clock)
//	Layer 3  weekend:     start and end day both Sat/Sun ⇒ weekend factor
//
// Layer 1 always reads the base distance, so N categories give N columns,
// never N chained multiplications. Layers 2 and 3 scale the Layer 1 value.
// Final values are rounded to two decimals (banker's rounding, exact
// decimal arithmetic via shopspring/decimal).
//
// Two named policies pin down the ambiguous cases:
//
//   - WindowPolicy: WindowByStart (default) prices a row by the window its
//     start clock falls in; WindowStrict rejects rows whose [start, end]
//     leaves that window or that day with ErrWindowSpan.
//   - WeekendPolicy: WeekendOverride (default) replaces the window factor
//     with the weekend factor; WeekendStack multiplies both.
//
// Day/time cells that cannot be parsed fail the whole call with a
// *week.ParseError; no row is ever priced with a defaulted factor.
package rates
