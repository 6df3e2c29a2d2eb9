// SPDX-License-Identifier: MIT

package arrowio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/tollmatrix/table"
)

// ErrUnsupportedType indicates an Arrow column with no table kind.
var ErrUnsupportedType = errors.New("arrowio: unsupported arrow type")

func arrowType(k table.Kind) arrow.DataType {
	switch k {
	case table.KindInt:
		return arrow.PrimitiveTypes.Int64
	case table.KindFloat:
		return arrow.PrimitiveTypes.Float64
	case table.KindBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// Schema derives the Arrow schema of t.
func Schema(t *table.Table) (*arrow.Schema, error) {
	names := t.Names()
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		k, err := t.Kind(name)
		if err != nil {
			return nil, fmt.Errorf("arrowio.Schema: %w", err)
		}
		fields[i] = arrow.Field{Name: name, Type: arrowType(k)}
	}

	return arrow.NewSchema(fields, nil), nil
}

// Record copies t into a new Arrow record. The caller must Release it.
func Record(mem memory.Allocator, t *table.Table) (arrow.Record, error) {
	schema, err := Schema(t)
	if err != nil {
		return nil, err
	}
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for i, name := range t.Names() {
		if err = appendColumn(b.Field(i), t, name); err != nil {
			return nil, fmt.Errorf("arrowio.Record: %w", err)
		}
	}

	return b.NewRecord(), nil
}

func appendColumn(fb array.Builder, t *table.Table, name string) error {
	switch fb := fb.(type) {
	case *array.Int64Builder:
		v, err := table.Values[int64](t, name)
		if err != nil {
			return err
		}
		fb.AppendValues(v, nil)
	case *array.Float64Builder:
		v, err := table.Values[float64](t, name)
		if err != nil {
			return err
		}
		fb.AppendValues(v, nil)
	case *array.BooleanBuilder:
		v, err := table.Values[bool](t, name)
		if err != nil {
			return err
		}
		fb.AppendValues(v, nil)
	case *array.StringBuilder:
		v, err := table.Values[string](t, name)
		if err != nil {
			return err
		}
		fb.AppendValues(v, nil)
	default:
		return fmt.Errorf("%s: %w", name, ErrUnsupportedType)
	}

	return nil
}

// Table copies an Arrow record back into a table.
func Table(rec arrow.Record) (*table.Table, error) {
	cols := make([]table.Column, rec.NumCols())
	for i, f := range rec.Schema().Fields() {
		switch a := rec.Column(i).(type) {
		case *array.Int64:
			cols[i] = table.Ints(f.Name, append([]int64(nil), a.Int64Values()...))
		case *array.Float64:
			cols[i] = table.Floats(f.Name, append([]float64(nil), a.Float64Values()...))
		case *array.Boolean:
			v := make([]bool, a.Len())
			for j := range v {
				v[j] = a.Value(j)
			}
			cols[i] = table.Bools(f.Name, v)
		case *array.String:
			v := make([]string, a.Len())
			for j := range v {
				v[j] = strings.Clone(a.Value(j)) // Value aliases the arrow buffer
			}
			cols[i] = table.Strings(f.Name, v)
		default:
			return nil, fmt.Errorf("arrowio.Table: %s is %s: %w", f.Name, f.Type, ErrUnsupportedType)
		}
	}

	return table.New(cols...)
}

// WriteFile writes t as a single-record Arrow IPC file at path.
func WriteFile(path string, t *table.Table) error {
	mem := memory.NewGoAllocator()
	rec, err := Record(mem, t)
	if err != nil {
		return err
	}
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("arrowio: create %q: %w", path, err)
	}
	w, err := ipc.NewFileWriter(f, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		f.Close()
		return fmt.Errorf("arrowio: %w", err)
	}
	if err = w.Write(rec); err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("arrowio: write %q: %w", path, err)
	}
	if err = w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("arrowio: close writer: %w", err)
	}

	return f.Close()
}

// ReadFile reads every record of an Arrow IPC file into one table.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("arrowio: open %q: %w", path, err)
	}
	defer f.Close()

	mem := memory.NewGoAllocator()
	r, err := ipc.NewFileReader(f, ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("arrowio: %w", err)
	}
	defer r.Close()

	if r.NumRecords() == 0 {
		b := array.NewRecordBuilder(mem, r.Schema())
		defer b.Release()
		empty := b.NewRecord()
		defer empty.Release()

		return Table(empty)
	}

	parts := make([]*table.Table, 0, r.NumRecords())
	for i := 0; i < r.NumRecords(); i++ {
		rec, err := r.Record(i)
		if err != nil {
			return nil, fmt.Errorf("arrowio: record %d: %w", i, err)
		}
		part, err := Table(rec)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return concat(parts)
}

// concat stacks same-schema tables vertically.
func concat(parts []*table.Table) (*table.Table, error) {
	if len(parts) == 1 {
		return parts[0], nil
	}
	names := parts[0].Names()
	cols := make([]table.Column, len(names))
	for j, name := range names {
		k, err := parts[0].Kind(name)
		if err != nil {
			return nil, err
		}
		switch k {
		case table.KindInt:
			cols[j], err = stack[int64](parts, name)
		case table.KindFloat:
			cols[j], err = stack[float64](parts, name)
		case table.KindBool:
			cols[j], err = stack[bool](parts, name)
		default:
			cols[j], err = stack[string](parts, name)
		}
		if err != nil {
			return nil, fmt.Errorf("arrowio: %w", err)
		}
	}

	return table.New(cols...)
}

func stack[T table.Value](parts []*table.Table, name string) (table.Column, error) {
	var out []T
	for _, p := range parts {
		v, err := table.Values[T](p, name)
		if err != nil {
			return table.Column{}, err
		}
		out = append(out, v...)
	}

	return table.NewColumn(name, out), nil
}
