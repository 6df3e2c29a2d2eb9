// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"
)

// Kind enumerates the storage kinds a Column may hold.
type Kind int

const (
	// KindString stores []string.
	KindString Kind = iota
	// KindInt stores []int64.
	KindInt
	// KindFloat stores []float64.
	KindFloat
	// KindBool stores []bool.
	KindBool
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the set of Go types a column can be read as.
type Value interface {
	string | int64 | float64 | bool
}

// Key is the subset of Value usable as an ordered grouping key.
type Key interface {
	string | int64 | float64
}

// Column is a named, typed sequence. The zero Column is not usable; build
// columns with NewColumn or the Strings/Ints/Floats/Bools shorthands.
type Column struct {
	name string
	kind Kind
	data any // one of []string, []int64, []float64, []bool
}

// NewColumn copies v into a new column named name.
// Complexity: O(n).
func NewColumn[T Value](name string, v []T) Column {
	return Column{name: name, kind: kindOf[T](), data: slices.Clone(v)}
}

// Strings builds a KindString column.
func Strings(name string, v []string) Column { return NewColumn(name, v) }

// Ints builds a KindInt column.
func Ints(name string, v []int64) Column { return NewColumn(name, v) }

// Floats builds a KindFloat column.
func Floats(name string, v []float64) Column { return NewColumn(name, v) }

// Bools builds a KindBool column.
func Bools(name string, v []bool) Column { return NewColumn(name, v) }

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Kind returns the storage kind.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c Column) Len() int {
	switch d := c.data.(type) {
	case []string:
		return len(d)
	case []int64:
		return len(d)
	case []float64:
		return len(d)
	case []bool:
		return len(d)
	default:
		return 0
	}
}

// cell returns the boxed value at row i. Caller guarantees bounds.
func (c Column) cell(i int) any {
	switch d := c.data.(type) {
	case []string:
		return d[i]
	case []int64:
		return d[i]
	case []float64:
		return d[i]
	case []bool:
		return d[i]
	default:
		return nil
	}
}

// take materializes the rows listed in idx, in that order.
// Complexity: O(len(idx)).
func (c Column) take(idx []int) Column {
	switch d := c.data.(type) {
	case []string:
		return Column{name: c.name, kind: c.kind, data: pick(d, idx)}
	case []int64:
		return Column{name: c.name, kind: c.kind, data: pick(d, idx)}
	case []float64:
		return Column{name: c.name, kind: c.kind, data: pick(d, idx)}
	case []bool:
		return Column{name: c.name, kind: c.kind, data: pick(d, idx)}
	default:
		return c
	}
}

func pick[T any](src []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}

	return out
}

// kindOf maps a Value type parameter to its Kind.
func kindOf[T Value]() Kind {
	var zero T
	switch any(zero).(type) {
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case bool:
		return KindBool
	default:
		return KindString
	}
}
