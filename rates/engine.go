// SPDX-License-Identifier: MIT

package rates

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/week"
)

// Column names read and written by the engine.
const (
	ColDistance  = "distance"
	ColStartDay  = "start_day"
	ColStartTime = "start_time"
	ColEndDay    = "end_day"
	ColEndTime   = "end_time"
)

// Engine holds the ordered layer configuration. It is immutable after New
// and safe to share.
type Engine struct {
	categories    []Category
	windows       []Window // ascending, windows[0].Start == 0
	weekend       float64
	windowPolicy  WindowPolicy
	weekendPolicy WeekendPolicy
}

// New builds an Engine from the defaults overridden by opts.
// Errors: ErrConfig.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		categories:    DefaultCategories(),
		windows:       DefaultWindows(),
		weekend:       DefaultWeekendFactor,
		windowPolicy:  WindowByStart,
		weekendPolicy: WeekendOverride,
	}
	for _, set := range opts {
		set(e)
	}
	if err := e.validate(); err != nil {
		return nil, fmt.Errorf("rates.New: %w", err)
	}

	return e, nil
}

// Names returns the category names in column order.
func (e *Engine) Names() []string {
	out := make([]string, len(e.categories))
	for i, c := range e.categories {
		out[i] = c.Name
	}

	return out
}

// Record is one row to price.
type Record struct {
	Distance   float64
	Start, End week.Stamp
}

// base is Layer 1 for one distance, in category order.
func (e *Engine) base(distance float64) []decimal.Decimal {
	d := decimal.NewFromFloat(distance)
	out := make([]decimal.Decimal, len(e.categories))
	for i, c := range e.categories {
		out[i] = d.Mul(decimal.NewFromFloat(c.Coefficient)).RoundBank(1)
	}

	return out
}

// window returns the index of the window containing clock.
func (e *Engine) window(clock int) int {
	i := len(e.windows) - 1
	for i > 0 && e.windows[i].Start > clock {
		i--
	}

	return i
}

// windowEnd is the exclusive end of window i.
func (e *Engine) windowEnd(i int) int {
	if i+1 < len(e.windows) {
		return e.windows[i+1].Start
	}

	return week.SecondsPerDay
}

// Factor returns the combined Layer 2/3 multiplier for a row.
// Errors: ErrWindowSpan under WindowStrict.
func (e *Engine) Factor(start, end week.Stamp) (decimal.Decimal, error) {
	i := e.window(start.Clock)
	if e.windowPolicy == WindowStrict {
		if start.Day != end.Day || end.Clock < start.Clock || end.Clock > e.windowEnd(i) {
			return decimal.Zero, fmt.Errorf("%s – %s: %w", start, end, ErrWindowSpan)
		}
	}
	f := decimal.NewFromFloat(e.windows[i].Factor)

	if start.Day.IsWeekend() && end.Day.IsWeekend() {
		w := decimal.NewFromFloat(e.weekend)
		if e.weekendPolicy == WeekendStack {
			return f.Mul(w), nil
		}

		return w, nil
	}

	return f, nil
}

// Price runs all three layers for one record, in category order.
func (e *Engine) Price(r Record) ([]float64, error) {
	if err := checkDistance(r.Distance); err != nil {
		return nil, err
	}
	f, err := e.Factor(r.Start, r.End)
	if err != nil {
		return nil, err
	}
	base := e.base(r.Distance)
	out := make([]float64, len(base))
	for i, b := range base {
		out[i] = b.Mul(f).RoundBank(2).InexactFloat64()
	}

	return out, nil
}

func checkDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return fmt.Errorf("%v: %w", d, ErrInvalidDistance)
	}

	return nil
}

// Categories appends Layer 1 only: one column per category holding
// round(distance × coefficient, 1).
//
// Errors: ErrInvalidDistance, table.ErrUnknownColumn, table.ErrColumnKind,
// table.ErrDuplicateColumn.
func (e *Engine) Categories(t *table.Table) (*table.Table, error) {
	dist, err := t.Numbers(ColDistance)
	if err != nil {
		return nil, fmt.Errorf("rates.Categories: %w", err)
	}
	cols := e.newColumns(len(dist))
	for row, d := range dist {
		if err = checkDistance(d); err != nil {
			return nil, fmt.Errorf("rates.Categories: row %d: %w", row, err)
		}
		for k, v := range e.base(d) {
			cols[k][row] = v.InexactFloat64()
		}
	}

	return e.attach(t, cols)
}

// Apply appends one column per category priced through all three layers.
// The input needs distance plus start_day, start_time, end_day, end_time.
//
// Errors: *week.ParseError, ErrWindowSpan, ErrInvalidDistance, table errors.
// No partial table is returned.
func (e *Engine) Apply(t *table.Table) (*table.Table, error) {
	dist, err := t.Numbers(ColDistance)
	if err != nil {
		return nil, fmt.Errorf("rates.Apply: %w", err)
	}
	starts, err := week.ReadStamps(t, ColStartDay, ColStartTime)
	if err != nil {
		return nil, fmt.Errorf("rates.Apply: %w", err)
	}
	ends, err := week.ReadStamps(t, ColEndDay, ColEndTime)
	if err != nil {
		return nil, fmt.Errorf("rates.Apply: %w", err)
	}

	cols := e.newColumns(len(dist))
	var priced []float64
	for row := range dist {
		priced, err = e.Price(Record{Distance: dist[row], Start: starts[row], End: ends[row]})
		if err != nil {
			return nil, fmt.Errorf("rates.Apply: row %d: %w", row, err)
		}
		for k, v := range priced {
			cols[k][row] = v
		}
	}

	return e.attach(t, cols)
}

func (e *Engine) newColumns(n int) [][]float64 {
	cols := make([][]float64, len(e.categories))
	for k := range cols {
		cols[k] = make([]float64, n)
	}

	return cols
}

func (e *Engine) attach(t *table.Table, cols [][]float64) (*table.Table, error) {
	out := make([]table.Column, len(cols))
	for k, c := range e.categories {
		out[k] = table.Floats(c.Name, cols[k])
	}
	res, err := t.WithColumns(out...)
	if err != nil {
		return nil, fmt.Errorf("rates: %w", err)
	}

	return res, nil
}
