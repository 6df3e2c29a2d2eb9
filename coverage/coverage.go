// SPDX-License-Identifier: MIT

package coverage

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/week"
)

// Column names of the interval table.
const (
	ColID        = "id"
	ColID2       = "id_2"
	ColStartDay  = "startDay"
	ColStartTime = "startTime"
	ColEndDay    = "endDay"
	ColEndTime   = "endTime"
	ColComplete  = "complete"
)

// Key identifies a group.
type Key struct {
	ID, ID2 int64
}

func (k Key) compare(o Key) int {
	if c := cmp.Compare(k.ID, o.ID); c != 0 {
		return c
	}

	return cmp.Compare(k.ID2, o.ID2)
}

// Interval is one record's contribution to its group.
type Interval struct {
	Key        Key
	Start, End week.Stamp // End is inclusive
}

// Span is a half-open range [Start, End) of week seconds.
type Span struct {
	Start, End int
}

// Result is the verdict for one group.
type Result struct {
	Key      Key
	Complete bool
	Gaps     []Span // uncovered ranges, ascending; empty when Complete
}

// Span converts iv into the half-open span [start, end+1).
// Errors: ErrReversedInterval when End precedes Start on the week timeline.
func (iv Interval) Span() (Span, error) {
	s, e := iv.Start.Offset(), iv.End.Offset()+1
	if e <= s {
		return Span{}, fmt.Errorf("coverage: %v %s → %s: %w", iv.Key, iv.Start, iv.End, ErrReversedInterval)
	}

	return Span{Start: s, End: e}, nil
}

// Merge sorts spans by start and folds overlapping or adjacent ones.
// The input is not modified.
// Complexity: O(n log n).
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.End, b.End)
	})

	out := []Span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
			continue
		}
		out = append(out, s)
	}

	return out
}

// Gaps returns the parts of [0, Cycle) not covered by merged.
func Gaps(merged []Span) []Span {
	var out []Span
	at := 0
	for _, s := range merged {
		if s.Start > at {
			out = append(out, Span{Start: at, End: s.Start})
		}
		at = max(at, s.End)
	}
	if at < week.Cycle {
		out = append(out, Span{Start: at, End: week.Cycle})
	}

	return out
}

// Check groups intervals by key and reports completeness per group in
// ascending key order. A single reversed interval fails the whole check.
// Errors: ErrReversedInterval.
// Complexity: O(n log n).
func Check(intervals []Interval) ([]Result, error) {
	groups := make(map[Key][]Span)
	for i, iv := range intervals {
		sp, err := iv.Span()
		if err != nil {
			return nil, fmt.Errorf("coverage.Check: interval %d: %w", i, err)
		}
		groups[iv.Key] = append(groups[iv.Key], sp)
	}

	keys := make([]Key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.compare)

	out := make([]Result, len(keys))
	for i, k := range keys {
		merged := Merge(groups[k])
		complete := len(merged) == 1 && merged[0] == Span{Start: 0, End: week.Cycle}
		r := Result{Key: k, Complete: complete}
		if !complete {
			r.Gaps = Gaps(merged)
		}
		out[i] = r
	}

	return out, nil
}

// Intervals reads id, id_2, startDay, startTime, endDay, endTime from t.
// Errors: *week.ParseError, table.ErrUnknownColumn, table.ErrColumnKind.
func Intervals(t *table.Table) ([]Interval, error) {
	ids, err := table.Values[int64](t, ColID)
	if err != nil {
		return nil, fmt.Errorf("coverage.Intervals: %w", err)
	}
	ids2, err := table.Values[int64](t, ColID2)
	if err != nil {
		return nil, fmt.Errorf("coverage.Intervals: %w", err)
	}
	starts, err := week.ReadStamps(t, ColStartDay, ColStartTime)
	if err != nil {
		return nil, fmt.Errorf("coverage.Intervals: %w", err)
	}
	ends, err := week.ReadStamps(t, ColEndDay, ColEndTime)
	if err != nil {
		return nil, fmt.Errorf("coverage.Intervals: %w", err)
	}

	out := make([]Interval, len(ids))
	for i := range ids {
		out[i] = Interval{Key: Key{ID: ids[i], ID2: ids2[i]}, Start: starts[i], End: ends[i]}
	}

	return out, nil
}

// CheckTable is Intervals followed by Check.
func CheckTable(t *table.Table) ([]Result, error) {
	ivs, err := Intervals(t)
	if err != nil {
		return nil, err
	}

	return Check(ivs)
}

// ResultsTable renders results as id, id_2, complete.
func ResultsTable(rs []Result) (*table.Table, error) {
	ids := make([]int64, len(rs))
	ids2 := make([]int64, len(rs))
	ok := make([]bool, len(rs))
	for i, r := range rs {
		ids[i], ids2[i], ok[i] = r.Key.ID, r.Key.ID2, r.Complete
	}

	return table.New(
		table.Ints(ColID, ids),
		table.Ints(ColID2, ids2),
		table.Bools(ColComplete, ok),
	)
}
