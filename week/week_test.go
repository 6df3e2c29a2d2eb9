// SPDX-License-Identifier: MIT
package week_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/week"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want week.Day
	}{
		{"Monday", week.Monday},
		{"sunday", week.Sunday},
		{" WED ", week.Wednesday},
		{"sat", week.Saturday},
	}
	for _, tc := range tests {
		got, err := week.ParseDay(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := week.ParseDay("Funday")
	require.ErrorIs(t, err, week.ErrParse)
	require.True(t, week.Saturday.IsWeekend())
	require.False(t, week.Friday.IsWeekend())
	require.Equal(t, "Day(9)", week.Day(9).String())
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	s, err := week.ParseClock("23:59:59")
	require.NoError(t, err)
	require.Equal(t, week.SecondsPerDay-1, s)
	require.Equal(t, "23:59:59", week.FormatClock(s))

	for _, bad := range []string{"24:00:00", "7am", "", "10:00"} {
		_, err := week.ParseClock(bad)
		require.ErrorIs(t, err, week.ErrParse, bad)
	}
}

func TestStampOffset(t *testing.T) {
	t.Parallel()

	first, err := week.ParseStamp("Monday", "00:00:00")
	require.NoError(t, err)
	require.Equal(t, 0, first.Offset())

	last, err := week.ParseStamp("Sunday", "23:59:59")
	require.NoError(t, err)
	require.Equal(t, week.Cycle-1, last.Offset())
	require.Equal(t, "Sunday 23:59:59", last.String())
}

func TestReadStamps(t *testing.T) {
	t.Parallel()

	tb := table.MustNew(
		table.Strings("day", []string{"Tuesday", "Friday", "Someday"}),
		table.Strings("clock", []string{"10:00:00", "18:30:00", "01:00:00"}),
	)
	_, err := week.ReadStamps(tb, "day", "clock")
	var pe *week.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Row)
	require.Equal(t, "day", pe.Field)
	require.ErrorIs(t, err, week.ErrParse)
	require.Error(t, pe.Err)
	require.Contains(t, err.Error(), `"Someday"`)

	ok, err := week.ReadStamps(tb.Take([]int{0, 1}), "day", "clock")
	require.NoError(t, err)
	require.Equal(t, []week.Stamp{
		{Day: week.Tuesday, Clock: 36000},
		{Day: week.Friday, Clock: 18*3600 + 1800},
	}, ok)

	_, err = week.ReadStamps(tb, "nope", "clock")
	require.ErrorIs(t, err, table.ErrUnknownColumn)
}

func TestReadStamps_KeepsClockCause(t *testing.T) {
	tb := table.MustNew(
		table.Strings("day", []string{"Monday"}),
		table.Strings("clock", []string{"25:00:00"}),
	)
	_, err := week.ReadStamps(tb, "day", "clock")
	var pe *week.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "clock", pe.Field)
	require.ErrorIs(t, err, week.ErrParse)
	var te *time.ParseError
	require.ErrorAs(t, err, &te)

	require.ErrorIs(t, &week.ParseError{Row: 1, Field: "day", Value: "x"}, week.ErrParse)
}
