// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestClosure_ChainsLegs sums consecutive legs and keeps direct shortcuts.
func TestClosure_ChainsLegs(t *testing.T) {
	p, err := matrix.Build([]matrix.Observation[string]{
		obs("A", "B", 5), obs("B", "C", 3), obs("A", "D", 100), obs("C", "D", 2), obs("E", "E", 1),
	})
	require.NoError(t, err)

	c, err := matrix.Closure(p)
	require.NoError(t, err)
	require.NoError(t, matrix.Validate(c))

	require.Equal(t, 8.0, mustAt(t, c, "A", "C"))
	require.Equal(t, 10.0, mustAt(t, c, "D", "A")) // 5+3+2 beats the direct 100
	require.Equal(t, 0.0, mustAt(t, c, "A", "E"))  // unreachable
	require.Equal(t, 0.0, mustAt(t, c, "C", "C"))
	require.Equal(t, 0.0, mustAt(t, p, "A", "C")) // input untouched
}

func TestClosure_Nil(t *testing.T) {
	_, err := matrix.Closure[string](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
