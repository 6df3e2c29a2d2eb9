// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/table"
	"github.com/stretchr/testify/require"
)

// TestUnroll_Scenario checks row-major order with the diagonal excluded.
func TestUnroll_Scenario(t *testing.T) {
	p, err := matrix.Build([]matrix.Observation[string]{obs("A", "B", 5), obs("B", "C", 3)})
	require.NoError(t, err)

	got, err := matrix.Unroll(p)
	require.NoError(t, err)
	require.Equal(t, []matrix.Observation[string]{
		obs("A", "B", 5), obs("A", "C", 0),
		obs("B", "A", 5), obs("B", "C", 3),
		obs("C", "A", 0), obs("C", "B", 3),
	}, got)
}

// TestRoundTrip verifies build(unroll(M)) == M and unroll(build(unroll(M))) == unroll(M).
func TestRoundTrip(t *testing.T) {
	ids := []int64{10, 20, 30, 40}
	d, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	vals := [][]float64{
		{0, 1.5, 0, 7},
		{1.5, 0, 2.25, 0},
		{0, 2.25, 0, 3},
		{7, 0, 3, 0},
	}
	for i := range vals {
		for j := range vals[i] {
			require.NoError(t, d.Set(i, j, vals[i][j]))
		}
	}
	m, err := matrix.NewPairwise(ids, d)
	require.NoError(t, err)
	require.NoError(t, matrix.Validate(m))

	for _, r := range []matrix.Reconcile{matrix.ReconcileMirror, matrix.ReconcileMax} {
		u1, err := matrix.Unroll(m)
		require.NoError(t, err)
		rebuilt, err := matrix.Build(u1, matrix.WithReconcile(r))
		require.NoError(t, err)
		require.True(t, m.Equal(rebuilt), "policy %s", r)

		u2, err := matrix.Unroll(rebuilt)
		require.NoError(t, err)
		require.Equal(t, u1, u2)
	}
}

// TestUnrollTable emits the long-form column layout.
func TestUnrollTable(t *testing.T) {
	p, err := matrix.Build([]matrix.Observation[int64]{{A: 1, B: 2, Value: 4}})
	require.NoError(t, err)

	tb, err := matrix.UnrollTable(p)
	require.NoError(t, err)
	require.Equal(t, []string{matrix.ColIDStart, matrix.ColIDEnd, matrix.ColDistance}, tb.Names())

	starts, err := table.Values[int64](tb, matrix.ColIDStart)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, starts)
	d, err := table.Values[float64](tb, matrix.ColDistance)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4}, d)
}

// TestUnroll_ShapeErrors covers the ShapeError family.
func TestUnroll_ShapeErrors(t *testing.T) {
	var nilP *matrix.Pairwise[string]
	_, err := matrix.Unroll(nilP)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.NewPairwise([]string{"A", "B"}, rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrShape)

	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = matrix.NewPairwise([]string{"A"}, sq)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = matrix.NewPairwise([]string{"B", "A"}, sq)
	require.ErrorIs(t, err, matrix.ErrShape)
}
