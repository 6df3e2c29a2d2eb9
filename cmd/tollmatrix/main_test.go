// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollmatrix/arrowio"
	"github.com/katalvlaran/tollmatrix/csvio"
	"github.com/katalvlaran/tollmatrix/table"
)

func init() { color.NoColor = true }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

const distancesCSV = `id_start,id_end,distance
1001400,1001402,9.7
1001402,1001404,20.2
`

func TestDistanceAndUnroll(t *testing.T) {
	in := writeFile(t, "d.csv", distancesCSV)

	out, _, err := run(t, "distance", in)
	require.NoError(t, err)
	require.Contains(t, out, "20.2")
	require.Contains(t, out, "_3 rows_")

	out, _, err = run(t, "distance", in, "--cumulative", "--precision", "1")
	require.NoError(t, err)
	require.Contains(t, out, "29.9")

	csvPath := filepath.Join(t.TempDir(), "long.csv")
	arrowPath := filepath.Join(t.TempDir(), "long.arrow")
	_, logs, err := run(t, "unroll", in, "--out", csvPath, "--arrow-out", arrowPath, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, logs, `"run_id"`)

	long, err := csvio.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, 6, long.Len())
	fromArrow, err := arrowio.ReadFile(arrowPath)
	require.NoError(t, err)
	require.Equal(t, long.Names(), fromArrow.Names())
}

func TestThresholdAndRates(t *testing.T) {
	in := writeFile(t, "long.csv", `id_start,id_end,distance
1,2,10
2,1,10.5
3,1,20
`)
	out, _, err := run(t, "threshold", in, "--ref", "1")
	require.NoError(t, err)
	require.Contains(t, out, "_2 rows_")

	_, _, err = run(t, "threshold", in, "--ref", "99")
	require.Error(t, err)

	csvPath := filepath.Join(t.TempDir(), "rates.csv")
	_, _, err = run(t, "rates", in, "--out", csvPath)
	require.NoError(t, err)
	priced, err := csvio.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, 63, priced.Len())
	car, err := table.Values[float64](priced, "car")
	require.NoError(t, err)
	require.Equal(t, 2.4, car[0])

	out, _, err = run(t, "rates", in, "--categories-only")
	require.NoError(t, err)
	require.Contains(t, out, "truck")
}

func TestCoverageAndFleet(t *testing.T) {
	iv := writeFile(t, "iv.csv", `id,id_2,startDay,startTime,endDay,endTime
1014000,-1,Monday,00:00:00,Sunday,23:59:59
1014002,-1,Monday,05:00:00,Wednesday,10:00:00
`)
	out, _, err := run(t, "coverage", iv)
	require.NoError(t, err)
	require.Contains(t, out, "true")
	require.Contains(t, out, "false")

	counts := writeFile(t, "c.csv", `id_1,id_2,route,moto,car,rv,bus,truck
801,802,11,1,30,1,0,8
802,801,12,1,10,1,9,2
`)
	out, _, err = run(t, "fleet", counts)
	require.NoError(t, err)
	require.Contains(t, out, "22.5")
	require.Contains(t, out, "| route")
}

func TestBadConfig(t *testing.T) {
	cfg := writeFile(t, "c.yaml", "matrix:\n  reconcile: average\n")
	in := writeFile(t, "d.csv", distancesCSV)
	_, _, err := run(t, "distance", in, "--config", cfg)
	require.Error(t, err)

	_, _, err = run(t, "distance", in, "--log-level", "loud")
	require.Error(t, err)
}
