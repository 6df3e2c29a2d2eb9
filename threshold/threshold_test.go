// SPDX-License-Identifier: MIT
package threshold_test

import (
	"testing"

	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/threshold"
	"github.com/stretchr/testify/require"
)

func scenario() *table.Table {
	// means: A 10, B 10.5, C 20
	return table.MustNew(
		table.Strings("id_start", []string{"A", "A", "B", "C", "C", "B"}),
		table.Floats("distance", []float64{8, 12, 10, 20, 20, 11}),
	)
}

func TestWithin_IncludesReferenceByDefault(t *testing.T) {
	got, err := threshold.Within(scenario(), "id_start", "distance", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, got)
}

func TestWithin_ExcludeReference(t *testing.T) {
	got, err := threshold.Within(scenario(), "id_start", "distance", "A", threshold.ExcludeReference())
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, got)
}

func TestWithin_BandEdgesAreClosed(t *testing.T) {
	tb := table.MustNew(
		table.Ints("id", []int64{3, 1, 2, 4}),
		table.Ints("v", []int64{9, 10, 11, 12}),
	)
	got, err := threshold.Within[int64](tb, "id", "v", 1)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, got)

	got, err = threshold.Within[int64](tb, "id", "v", 1, threshold.WithBand(0.25))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4}, got)
}

func TestWithin_Errors(t *testing.T) {
	_, err := threshold.Within(scenario(), "id_start", "distance", "Z")
	require.ErrorIs(t, err, threshold.ErrNotFound)

	_, err = threshold.Within(scenario(), "id_start", "missing", "A")
	require.ErrorIs(t, err, table.ErrUnknownColumn)

	_, err = threshold.Within[int64](scenario(), "id_start", "distance", 1)
	require.ErrorIs(t, err, table.ErrColumnKind)

	require.PanicsWithValue(t, "threshold: WithBand: band must be finite, non-negative", func() {
		threshold.WithBand(-0.1)
	})
}

func TestBounds(t *testing.T) {
	lo, hi := threshold.Bounds(10, 0.1)
	require.InDelta(t, 9.0, lo, 1e-12)
	require.InDelta(t, 11.0, hi, 1e-12)

	lo, hi = threshold.Bounds(-10, 0.1)
	require.InDelta(t, -11.0, lo, 1e-12)
	require.InDelta(t, -9.0, hi, 1e-12)
}
