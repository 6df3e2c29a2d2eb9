// SPDX-License-Identifier: MIT
package coverage_test

import (
	"testing"

	"github.com/katalvlaran/tollmatrix/coverage"
	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/week"
	"github.com/stretchr/testify/require"
)

func iv(t *testing.T, id int64, sd, st, ed, et string) coverage.Interval {
	t.Helper()
	s, err := week.ParseStamp(sd, st)
	require.NoError(t, err)
	e, err := week.ParseStamp(ed, et)
	require.NoError(t, err)

	return coverage.Interval{Key: coverage.Key{ID: id, ID2: 1}, Start: s, End: e}
}

func TestCheck_SingleInterval(t *testing.T) {
	full, err := coverage.Check([]coverage.Interval{iv(t, 1, "Monday", "00:00:00", "Sunday", "23:59:59")})
	require.NoError(t, err)
	require.Len(t, full, 1)
	require.True(t, full[0].Complete)
	require.Empty(t, full[0].Gaps)

	short, err := coverage.Check([]coverage.Interval{iv(t, 1, "Monday", "00:00:00", "Sunday", "23:59:58")})
	require.NoError(t, err)
	require.False(t, short[0].Complete)
	require.Equal(t, []coverage.Span{{Start: week.Cycle - 1, End: week.Cycle}}, short[0].Gaps)
}

func TestCheck_MultiInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   func(t *testing.T) []coverage.Interval
		want bool
	}{
		{"adjacent days", func(t *testing.T) []coverage.Interval {
			out := make([]coverage.Interval, 0, 7)
			for d := week.Monday; d <= week.Sunday; d++ {
				out = append(out, iv(t, 1, d.String(), "00:00:00", d.String(), "23:59:59"))
			}

			return out
		}, true},
		{"overlapping", func(t *testing.T) []coverage.Interval {
			return []coverage.Interval{
				iv(t, 1, "Monday", "00:00:00", "Thursday", "12:00:00"),
				iv(t, 1, "Wednesday", "00:00:00", "Sunday", "23:59:59"),
			}
		}, true},
		{"gap of one second", func(t *testing.T) []coverage.Interval {
			return []coverage.Interval{
				iv(t, 1, "Monday", "00:00:00", "Wednesday", "09:59:58"),
				iv(t, 1, "Wednesday", "10:00:00", "Sunday", "23:59:59"),
			}
		}, false},
		{"right total, wrong place", func(t *testing.T) []coverage.Interval {
			return []coverage.Interval{
				iv(t, 1, "Monday", "00:00:00", "Thursday", "11:59:59"),
				iv(t, 1, "Monday", "00:00:00", "Thursday", "11:59:59"),
			}
		}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := coverage.Check(tc.in(t))
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, tc.want, got[0].Complete)
		})
	}
}

func TestCheck_ReversedIntervalFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   func(t *testing.T) []coverage.Interval
	}{
		{"single record ending the day before it starts", func(t *testing.T) []coverage.Interval {
			return []coverage.Interval{iv(t, 1, "Tuesday", "00:00:00", "Monday", "23:59:59")}
		}},
		{"friday to tuesday beside a valid record", func(t *testing.T) []coverage.Interval {
			return []coverage.Interval{
				iv(t, 1, "Friday", "00:00:00", "Tuesday", "23:59:59"),
				iv(t, 1, "Wednesday", "00:00:00", "Thursday", "23:59:59"),
			}
		}},
		{"same day, end before start", func(t *testing.T) []coverage.Interval {
			return []coverage.Interval{iv(t, 1, "Monday", "12:00:00", "Monday", "11:59:59")}
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := coverage.Check(tc.in(t))
			require.ErrorIs(t, err, coverage.ErrReversedInterval)
			require.Nil(t, got)
		})
	}
}

func TestInterval_SpanIncludesEndSecond(t *testing.T) {
	one := iv(t, 1, "Monday", "00:00:00", "Monday", "00:00:00")
	sp, err := one.Span()
	require.NoError(t, err)
	require.Equal(t, coverage.Span{Start: 0, End: 1}, sp)
}

func TestMergeAndGaps(t *testing.T) {
	in := []coverage.Span{{Start: 50, End: 60}, {Start: 0, End: 10}, {Start: 10, End: 20}, {Start: 15, End: 18}}
	merged := coverage.Merge(in)
	require.Equal(t, []coverage.Span{{Start: 0, End: 20}, {Start: 50, End: 60}}, merged)
	require.Equal(t, coverage.Span{Start: 50, End: 60}, in[0]) // input untouched
	require.Equal(t, []coverage.Span{{Start: 20, End: 50}, {Start: 60, End: week.Cycle}}, coverage.Gaps(merged))
	require.Nil(t, coverage.Merge(nil))
}

func TestCheckTable_SortedByKey(t *testing.T) {
	tb := table.MustNew(
		table.Ints("id", []int64{1014002, 1014000, 1014000}),
		table.Ints("id_2", []int64{-1, 1014002, -1}),
		table.Strings("startDay", []string{"Monday", "Monday", "Monday"}),
		table.Strings("startTime", []string{"00:00:00", "05:00:00", "00:00:00"}),
		table.Strings("endDay", []string{"Sunday", "Wednesday", "Sunday"}),
		table.Strings("endTime", []string{"23:59:59", "10:00:00", "23:59:59"}),
	)
	got, err := coverage.CheckTable(tb)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, coverage.Key{ID: 1014000, ID2: -1}, got[0].Key)
	require.True(t, got[0].Complete)
	require.Equal(t, coverage.Key{ID: 1014000, ID2: 1014002}, got[1].Key)
	require.False(t, got[1].Complete)
	require.Equal(t, coverage.Key{ID: 1014002, ID2: -1}, got[2].Key)
	require.True(t, got[2].Complete)

	rt, err := coverage.ResultsTable(got)
	require.NoError(t, err)
	ok, err := table.Values[bool](rt, "complete")
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, ok)

	bad, err := table.New(
		table.Ints("id", []int64{1}),
		table.Ints("id_2", []int64{1}),
		table.Strings("startDay", []string{"Monday"}),
		table.Strings("startTime", []string{"25:00:00"}),
		table.Strings("endDay", []string{"Sunday"}),
		table.Strings("endTime", []string{"23:59:59"}),
	)
	require.NoError(t, err)
	_, err = coverage.CheckTable(bad)
	require.ErrorIs(t, err, week.ErrParse)
}
