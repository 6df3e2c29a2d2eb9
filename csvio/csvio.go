// SPDX-License-Identifier: MIT

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tollmatrix/table"
)

var (
	// ErrNoHeader indicates an empty input.
	ErrNoHeader = errors.New("csvio: missing header row")

	// ErrCell indicates a cell that does not fit a pinned column kind.
	ErrCell = errors.New("csvio: cell does not match column kind")
)

// Option configures Read.
type Option func(*readOptions)

type readOptions struct {
	kinds map[string]table.Kind
}

// WithKind forces column name to kind instead of inferring it.
func WithKind(name string, kind table.Kind) Option {
	return func(o *readOptions) { o.kinds[name] = kind }
}

// ReadFile opens path and calls Read.
func ReadFile(path string, opts ...Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Read parses a header row followed by records.
// Errors: ErrNoHeader, ErrCell, csv.ParseError, table errors.
func Read(r io.Reader, opts ...Option) (*table.Table, error) {
	o := readOptions{kinds: make(map[string]table.Kind)}
	for _, set := range opts {
		set(&o)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header, rows := records[0], records[1:]
	cols := make([]table.Column, len(header))
	cells := make([]string, len(rows))
	for j, name := range header {
		name = strings.TrimSpace(name)
		for i, rec := range rows {
			cells[i] = strings.TrimSpace(rec[j])
		}
		kind, pinned := o.kinds[name]
		if !pinned {
			kind = infer(cells)
		}
		if cols[j], err = column(name, kind, cells); err != nil {
			return nil, err
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}

	return t, nil
}

// infer picks the narrowest kind that holds every cell.
func infer(cells []string) table.Kind {
	if len(cells) == 0 {
		return table.KindString
	}
	ints, floats := true, true
	for _, c := range cells {
		if c == "" {
			ints = false
			continue
		}
		if ints {
			if _, err := strconv.ParseInt(c, 10, 64); err != nil {
				ints = false
			}
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			floats = false
			break
		}
	}
	switch {
	case ints:
		return table.KindInt
	case floats:
		return table.KindFloat
	default:
		return table.KindString
	}
}

func column(name string, kind table.Kind, cells []string) (table.Column, error) {
	var err error
	switch kind {
	case table.KindInt:
		v := make([]int64, len(cells))
		for i, c := range cells {
			if v[i], err = strconv.ParseInt(c, 10, 64); err != nil {
				return table.Column{}, fmt.Errorf("csvio: %s row %d %q: %w", name, i+1, c, ErrCell)
			}
		}

		return table.Ints(name, v), nil
	case table.KindFloat:
		v := make([]float64, len(cells))
		for i, c := range cells {
			if c == "" {
				v[i] = math.NaN()
				continue
			}
			if v[i], err = strconv.ParseFloat(c, 64); err != nil {
				return table.Column{}, fmt.Errorf("csvio: %s row %d %q: %w", name, i+1, c, ErrCell)
			}
		}

		return table.Floats(name, v), nil
	case table.KindBool:
		v := make([]bool, len(cells))
		for i, c := range cells {
			if v[i], err = strconv.ParseBool(c); err != nil {
				return table.Column{}, fmt.Errorf("csvio: %s row %d %q: %w", name, i+1, c, ErrCell)
			}
		}

		return table.Bools(name, v), nil
	default:
		return table.Strings(name, append([]string(nil), cells...)), nil
	}
}

// Write emits a header row and one record per table row.
func Write(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("csvio: write header: %w", err)
	}
	rec := make([]string, t.Width())
	for i := 0; i < t.Len(); i++ {
		row, err := t.Row(i)
		if err != nil {
			return fmt.Errorf("csvio: %w", err)
		}
		for j, v := range row {
			rec[j] = Format(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csvio: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvio: flush: %w", err)
	}

	return nil
}

// WriteFile creates path and calls Write.
func WriteFile(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %q: %w", path, err)
	}
	if err = Write(f, t); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Format renders one boxed cell the way Write does.
func Format(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
