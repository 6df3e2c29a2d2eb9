// SPDX-License-Identifier: MIT

package report

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/tollmatrix/coverage"
	"github.com/katalvlaran/tollmatrix/fleet"
	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/table"
)

// Formatter renders markdown tables.
type Formatter struct {
	// Precision is the number of float decimals; -1 prints the shortest exact form.
	Precision int
}

// NewFormatter returns a formatter with shortest-form floats.
func NewFormatter() *Formatter {
	return &Formatter{Precision: -1}
}

// render writes one markdown table followed by a row count.
func (f *Formatter) render(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "_Columns: %v_\n\n_No rows_\n", header)
		return err
	}

	alignment := make([]tw.Align, len(header))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	tbl := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	tbl.Header(header)
	for _, r := range rows {
		if err := tbl.Append(r); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	if err := tbl.Render(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	_, err := fmt.Fprintf(w, "\n_%d rows_\n", len(rows))

	return err
}

// Value converts one cell to its display form.
func (f *Formatter) Value(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', f.Precision, 64)
	case bool:
		if x {
			return color.GreenString("%t", x)
		}

		return color.RedString("%t", x)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Table renders every row of t.
func (f *Formatter) Table(w io.Writer, t *table.Table) error {
	rows := make([][]string, t.Len())
	for i := range rows {
		cells, err := t.Row(i)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		rows[i] = make([]string, len(cells))
		for j, c := range cells {
			rows[i][j] = f.Value(c)
		}
	}

	return f.render(w, t.Names(), rows)
}

// Completeness renders id, id_2, complete and the first gap of each group.
func (f *Formatter) Completeness(w io.Writer, rs []coverage.Result) error {
	rows := make([][]string, len(rs))
	for i, r := range rs {
		gap := ""
		if len(r.Gaps) > 0 {
			gap = fmt.Sprintf("%d–%d", r.Gaps[0].Start, r.Gaps[0].End)
		}
		rows[i] = []string{f.Value(r.Key.ID), f.Value(r.Key.ID2), f.Value(r.Complete), gap}
	}

	return f.render(w, []string{coverage.ColID, coverage.ColID2, coverage.ColComplete, "first_gap"}, rows)
}

// TypeCounts renders car class counts.
func (f *Formatter) TypeCounts(w io.Writer, cs []fleet.ClassCount) error {
	rows := make([][]string, len(cs))
	for i, c := range cs {
		rows[i] = []string{c.Class.String(), strconv.Itoa(c.Count)}
	}

	return f.render(w, []string{fleet.ColCarType, "count"}, rows)
}

// Matrix renders p with entity labels on both axes.
func Matrix[K cmp.Ordered](f *Formatter, w io.Writer, p *matrix.Pairwise[K]) error {
	ids := p.Entities()
	header := make([]string, len(ids)+1)
	for j, id := range ids {
		header[j+1] = fmt.Sprint(id)
	}
	rows := make([][]string, len(ids))
	for i, a := range ids {
		rows[i] = make([]string, len(ids)+1)
		rows[i][0] = fmt.Sprint(a)
		for j, b := range ids {
			v, err := p.At(a, b)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			rows[i][j+1] = f.Value(v)
		}
	}

	return f.render(w, header, rows)
}

// Keys renders a single column of keys.
func Keys[K cmp.Ordered](f *Formatter, w io.Writer, name string, keys []K) error {
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{fmt.Sprint(k)}
	}

	return f.render(w, []string{name}, rows)
}
