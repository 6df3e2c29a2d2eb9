// SPDX-License-Identifier: MIT
// Package table_test contains unit tests for Table construction, derivation and grouping.
package table_test

import (
	"testing"

	"github.com/katalvlaran/tollmatrix/table"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(
		table.Ints("id_start", []int64{1, 1, 2, 3}),
		table.Ints("id_end", []int64{2, 3, 1, 1}),
		table.Floats("distance", []float64{10, 20, 10, 20}),
	)
	require.NoError(t, err)

	return tb
}

// TestNewValidation covers the constructor's shape guards.
func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cols []table.Column
		want error
	}{
		{"empty name", []table.Column{table.Ints("", []int64{1})}, table.ErrEmptyName},
		{"duplicate", []table.Column{table.Ints("a", []int64{1}), table.Floats("a", []float64{1})}, table.ErrDuplicateColumn},
		{"length", []table.Column{table.Ints("a", []int64{1, 2}), table.Floats("b", []float64{1})}, table.ErrLengthMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := table.New(tc.cols...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	empty, err := table.New()
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 0, empty.Width())
}

// TestValuesKinds verifies typed access and kind mismatch reporting.
func TestValuesKinds(t *testing.T) {
	tb := sample(t)

	ids, err := table.Values[int64](tb, "id_start")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1, 2, 3}, ids)

	_, err = table.Values[string](tb, "id_start")
	require.ErrorIs(t, err, table.ErrColumnKind)

	_, err = table.Values[float64](tb, "nope")
	require.ErrorIs(t, err, table.ErrUnknownColumn)

	nums, err := tb.Numbers("id_end") // int widened
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 1, 1}, nums)

	k, err := tb.Kind("distance")
	require.NoError(t, err)
	require.Equal(t, table.KindFloat, k)
	require.Equal(t, "float", k.String())
}

// TestValuesReturnsCopy ensures callers cannot mutate table storage.
func TestValuesReturnsCopy(t *testing.T) {
	tb := sample(t)
	d, err := table.Values[float64](tb, "distance")
	require.NoError(t, err)
	d[0] = 999

	again, err := table.Values[float64](tb, "distance")
	require.NoError(t, err)
	require.Equal(t, 10.0, again[0])
}

// TestWithColumnIsPure checks that derivation leaves the input untouched.
func TestWithColumnIsPure(t *testing.T) {
	tb := sample(t)
	out, err := tb.WithColumn(table.Floats("moto", []float64{1, 2, 1, 2}))
	require.NoError(t, err)

	require.Equal(t, []string{"id_start", "id_end", "distance"}, tb.Names())
	require.Equal(t, []string{"id_start", "id_end", "distance", "moto"}, out.Names())

	_, err = tb.WithColumn(table.Floats("distance", []float64{1, 2, 3, 4}))
	require.ErrorIs(t, err, table.ErrDuplicateColumn)

	_, err = tb.WithColumn(table.Floats("short", []float64{1}))
	require.ErrorIs(t, err, table.ErrLengthMismatch)
}

// TestSelectTakeProject covers row filtering and projection.
func TestSelectTakeProject(t *testing.T) {
	tb := sample(t)
	d, _ := table.Values[float64](tb, "distance")

	far := tb.Select(func(i int) bool { return d[i] > 15 })
	require.Equal(t, 2, far.Len())
	ids, err := table.Values[int64](far, "id_start")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3}, ids)

	rev := tb.Take([]int{3, 0})
	row, err := rev.Row(0)
	require.NoError(t, err)
	require.Equal(t, []any{int64(3), int64(1), 20.0}, row)

	_, err = rev.Row(2)
	require.ErrorIs(t, err, table.ErrRowOutOfRange)

	p, err := tb.Project("distance", "id_start")
	require.NoError(t, err)
	require.Equal(t, []string{"distance", "id_start"}, p.Names())
}

// TestGroupMean verifies per-key means in ascending key order.
func TestGroupMean(t *testing.T) {
	tb := sample(t)
	groups, err := table.GroupMean[int64](tb, "id_start", "distance")
	require.NoError(t, err)
	require.Equal(t, []table.Group[int64]{
		{Key: 1, Mean: 15, Count: 2},
		{Key: 2, Mean: 10, Count: 1},
		{Key: 3, Mean: 20, Count: 1},
	}, groups)

	_, err = table.GroupMean[string](tb, "id_start", "distance")
	require.ErrorIs(t, err, table.ErrColumnKind)
}
