// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"
)

// Table is an immutable relation: ordered columns of identical length.
// All derivations return a new *Table.
type Table struct {
	cols  []Column
	index map[string]int // column name → position in cols
	n     int            // row count
}

// New assembles a table from cols, preserving their order.
// Implementation:
//   - Stage 1: reject empty or duplicate names.
//   - Stage 2: require equal lengths.
//
// Errors: ErrEmptyName, ErrDuplicateColumn, ErrLengthMismatch.
// Complexity: O(w).
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.name == "" {
			return nil, fmt.Errorf("table.New: column %d: %w", i, ErrEmptyName)
		}
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("table.New: %q: %w", c.name, ErrDuplicateColumn)
		}
		if i == 0 {
			t.n = c.Len()
		} else if c.Len() != t.n {
			return nil, fmt.Errorf("table.New: %q has %d rows, want %d: %w", c.name, c.Len(), t.n, ErrLengthMismatch)
		}
		t.index[c.name] = len(t.cols)
		t.cols = append(t.cols, c)
	}

	return t, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}

	return out
}

// Has reports whether a column named name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("table: %q: %w", name, ErrUnknownColumn)
	}

	return t.cols[i], nil
}

// Kind returns the kind of the named column.
func (t *Table) Kind(name string) (Kind, error) {
	c, err := t.Column(name)
	if err != nil {
		return 0, err
	}

	return c.kind, nil
}

// Values returns a copy of the named column as []T.
// Errors: ErrUnknownColumn, ErrColumnKind.
// Complexity: O(n).
func Values[T Value](t *Table, name string) ([]T, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	d, ok := c.data.([]T)
	if !ok {
		return nil, fmt.Errorf("table: %q is %s, want %s: %w", name, c.kind, kindOf[T](), ErrColumnKind)
	}

	return slices.Clone(d), nil
}

// Numbers returns the named column widened to float64. Int and float
// columns qualify; anything else is ErrColumnKind.
func (t *Table) Numbers(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	switch d := c.data.(type) {
	case []float64:
		return slices.Clone(d), nil
	case []int64:
		out := make([]float64, len(d))
		for i, v := range d {
			out[i] = float64(v)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("table: %q is %s, want numeric: %w", name, c.kind, ErrColumnKind)
	}
}

// WithColumn returns a new table with c appended. The receiver is unchanged.
// Errors: ErrEmptyName, ErrDuplicateColumn, ErrLengthMismatch.
func (t *Table) WithColumn(c Column) (*Table, error) {
	cols := make([]Column, 0, len(t.cols)+1)
	cols = append(cols, t.cols...)
	cols = append(cols, c)

	return New(cols...)
}

// WithColumns appends several columns at once, left to right.
func (t *Table) WithColumns(cs ...Column) (*Table, error) {
	out := t
	var err error
	for _, c := range cs {
		if out, err = out.WithColumn(c); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Project returns a new table restricted to names, in that order.
func (t *Table) Project(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("table.Project: %w", err)
		}
		cols = append(cols, c)
	}

	return New(cols...)
}

// Select returns a new table holding the rows for which keep returns true,
// in their original order.
// Complexity: O(w·n).
func (t *Table) Select(keep func(row int) bool) *Table {
	idx := make([]int, 0, t.n)
	for i := 0; i < t.n; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}

	return t.Take(idx)
}

// Take returns a new table holding the listed rows in the listed order.
// Indexes must be within [0, Len()).
func (t *Table) Take(idx []int) *Table {
	out := &Table{
		cols:  make([]Column, len(t.cols)),
		index: make(map[string]int, len(t.cols)),
		n:     len(idx),
	}
	for i, c := range t.cols {
		out.cols[i] = c.take(idx)
		out.index[c.name] = i
	}

	return out
}

// Row returns the boxed cells of row i in column order.
func (t *Table) Row(i int) ([]any, error) {
	if i < 0 || i >= t.n {
		return nil, fmt.Errorf("table.Row(%d): %w", i, ErrRowOutOfRange)
	}
	out := make([]any, len(t.cols))
	for j, c := range t.cols {
		out[j] = c.cell(i)
	}

	return out, nil
}
