// SPDX-License-Identifier: MIT

// Package tollmatrix turns route and vehicle tables into distance matrices,
// toll rates and weekly coverage verdicts.
//
// 🚦 What is in the box?
//
//	• table/     — immutable typed columns, selection, group-by mean
//	• matrix/    — sparse (a, b, value) triples ⇄ symmetric zero-diagonal matrix
//	• threshold/ — keys whose mean sits within ±10% of a reference
//	• rates/     — category coefficients, time-window and weekend factors
//	• coverage/  — interval merge over the Monday–Sunday second timeline
//	• fleet/     — car matrix, car classes, bus outliers, truck routes
//	• week/      — day/clock parsing onto the weekly timeline
//
// Around the core:
//
//	config/   (YAML)  csvio/ (CSV)  arrowio/ (Arrow IPC)
//	report/   (markdown tables)  pipeline/ (logged stages)
//	cmd/tollmatrix (cobra CLI)
//
// Quick example:
//
//	A ──5── B ──3── C
//
//	matrix.Build over [(A,B,5), (B,C,3)] gives
//
//	    A  B  C
//	A [ 0, 5, 0 ]
//	B [ 5, 0, 3 ]
//	C [ 0, 3, 0 ]
//
// and matrix.Unroll walks it back row by row, skipping the diagonal.
//
// The core packages are pure: no logging, no I/O, no shared state. Every
// failure is a sentinel error matched with errors.Is.
package tollmatrix
