// SPDX-License-Identifier: MIT
package arrowio_test

import (
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollmatrix/arrowio"
	"github.com/katalvlaran/tollmatrix/table"
)

func sample() *table.Table {
	return table.MustNew(
		table.Ints("id_start", []int64{1001400, 1001402}),
		table.Floats("distance", []float64{9.7, 20.2}),
		table.Strings("start_day", []string{"Monday", "Sunday"}),
		table.Bools("complete", []bool{true, false}),
	)
}

func TestSchemaAndRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	s, err := arrowio.Schema(sample())
	require.NoError(t, err)
	require.Equal(t, arrow.PrimitiveTypes.Int64, s.Field(0).Type)
	require.Equal(t, arrow.BinaryTypes.String, s.Field(2).Type)

	rec, err := arrowio.Record(mem, sample())
	require.NoError(t, err)
	defer rec.Release()
	require.EqualValues(t, 2, rec.NumRows())
	require.EqualValues(t, 4, rec.NumCols())

	back, err := arrowio.Table(rec)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		want, _ := sample().Row(i)
		got, _ := back.Row(i)
		require.Equal(t, want, got)
	}
}

func TestWriteReadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rates.arrow")
	require.NoError(t, arrowio.WriteFile(p, sample()))

	back, err := arrowio.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, sample().Names(), back.Names())
	d, err := table.Values[float64](back, "distance")
	require.NoError(t, err)
	require.Equal(t, []float64{9.7, 20.2}, d)
}
