// SPDX-License-Identifier: MIT
package csvio_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tollmatrix/csvio"
	"github.com/katalvlaran/tollmatrix/table"
	"github.com/stretchr/testify/require"
)

const distances = `id_start,id_end,distance
1001400,1001402,9.7
1001402,1001404,20.2
1001404,1001406,
`

func TestRead_InfersKinds(t *testing.T) {
	tb, err := csvio.Read(strings.NewReader(distances))
	require.NoError(t, err)
	require.Equal(t, 3, tb.Len())

	for name, want := range map[string]table.Kind{
		"id_start": table.KindInt,
		"id_end":   table.KindInt,
		"distance": table.KindFloat,
	} {
		k, err := tb.Kind(name)
		require.NoError(t, err)
		require.Equal(t, want, k, name)
	}
	d, err := table.Values[float64](tb, "distance")
	require.NoError(t, err)
	require.True(t, math.IsNaN(d[2]))
}

func TestRead_PinnedKinds(t *testing.T) {
	tb, err := csvio.Read(strings.NewReader("id,flag\n7,true\n8,false\n"),
		csvio.WithKind("id", table.KindString), csvio.WithKind("flag", table.KindBool))
	require.NoError(t, err)
	ids, err := table.Values[string](tb, "id")
	require.NoError(t, err)
	require.Equal(t, []string{"7", "8"}, ids)

	_, err = csvio.Read(strings.NewReader("id\nx\n"), csvio.WithKind("id", table.KindInt))
	require.ErrorIs(t, err, csvio.ErrCell)

	_, err = csvio.Read(strings.NewReader(""))
	require.ErrorIs(t, err, csvio.ErrNoHeader)
}

func TestWriteReadRoundTrip(t *testing.T) {
	in := table.MustNew(
		table.Ints("id", []int64{1, 2}),
		table.Strings("day", []string{"Monday", "Sunday, late"}),
		table.Floats("car", []float64{2.4, 3.6}),
		table.Bools("complete", []bool{true, false}),
	)
	var buf bytes.Buffer
	require.NoError(t, csvio.Write(&buf, in))
	require.Contains(t, buf.String(), `"Sunday, late"`)

	out, err := csvio.Read(&buf, csvio.WithKind("complete", table.KindBool))
	require.NoError(t, err)
	require.Equal(t, in.Names(), out.Names())
	for i := 0; i < in.Len(); i++ {
		a, _ := in.Row(i)
		b, _ := out.Row(i)
		require.Equal(t, a, b)
	}

	p := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, csvio.WriteFile(p, in))
	back, err := csvio.ReadFile(p, csvio.WithKind("complete", table.KindBool))
	require.NoError(t, err)
	require.Equal(t, 2, back.Len())
}
