// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrUnknownColumn is returned when a column name is not present in the table.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrColumnKind indicates the column exists but holds a different kind
	// than the caller asked for.
	ErrColumnKind = errors.New("table: column kind mismatch")

	// ErrLengthMismatch indicates columns of differing lengths.
	ErrLengthMismatch = errors.New("table: column lengths differ")

	// ErrDuplicateColumn indicates two columns share a name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrEmptyName indicates a column without a name.
	ErrEmptyName = errors.New("table: empty column name")

	// ErrRowOutOfRange indicates a row index outside [0, Len()).
	ErrRowOutOfRange = errors.New("table: row index out of range")
)
