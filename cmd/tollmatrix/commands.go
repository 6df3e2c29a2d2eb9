// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tollmatrix/coverage"
	"github.com/katalvlaran/tollmatrix/csvio"
	"github.com/katalvlaran/tollmatrix/fleet"
	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/report"
	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/threshold"
)

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <distances.csv>",
		Short: "Build the symmetric distance matrix from id_start, id_end, distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}
			p, err := a.runner.Distance(t)
			if err != nil {
				return err
			}
			if err = report.Matrix(a.format, a.stdout, p); err != nil {
				return err
			}
			w, err := wide(p)
			if err != nil {
				return err
			}

			return a.writeFiles(w)
		},
	}
}

func (a *app) unrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unroll <distances.csv>",
		Short: "Build the distance matrix and flatten it to one row per ordered pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}
			p, err := a.runner.Distance(t)
			if err != nil {
				return err
			}
			long, err := a.runner.Unroll(p)
			if err != nil {
				return err
			}

			return a.emit(long)
		},
	}
}

func (a *app) thresholdCmd() *cobra.Command {
	var ref int64
	cmd := &cobra.Command{
		Use:   "threshold <unrolled.csv>",
		Short: "List id_start keys whose mean distance is within the band of --ref",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}
			keys, err := a.runner.Threshold(t, ref)
			if err != nil {
				return err
			}
			out, err := threshold.Table(matrix.ColIDStart, keys)
			if err != nil {
				return err
			}

			return a.emit(out)
		},
	}
	cmd.Flags().Int64Var(&ref, "ref", 0, "Reference id_start")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

func (a *app) ratesCmd() *cobra.Command {
	var categoriesOnly bool
	cmd := &cobra.Command{
		Use:   "rates <unrolled.csv>",
		Short: "Price rows per vehicle category, time window and weekend",
		Long: `Price rows per vehicle category, time window and weekend.

Rows without start_day/start_time/end_day/end_time are expanded to every
day and time window of the week first. --categories-only stops after the
category layer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}
			var out *table.Table
			if categoriesOnly {
				out, err = a.runner.Categories(t)
			} else {
				out, err = a.runner.Rates(t)
			}
			if err != nil {
				return err
			}

			return a.emit(out)
		},
	}
	cmd.Flags().BoolVar(&categoriesOnly, "categories-only", false, "Apply only the category coefficients")

	return cmd
}

func (a *app) coverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <intervals.csv>",
		Short: "Check that each (id, id_2) group covers the whole week",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}
			res, err := a.runner.Coverage(t)
			if err != nil {
				return err
			}
			if err = a.format.Completeness(a.stdout, res); err != nil {
				return err
			}
			rt, err := coverage.ResultsTable(res)
			if err != nil {
				return err
			}

			return a.writeFiles(rt)
		},
	}
}

func (a *app) fleetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fleet <counts.csv>",
		Short: "Car matrix, car classes, bus outliers and heavy-truck routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}
			rep, err := a.runner.Fleet(t)
			if err != nil {
				return err
			}
			if err = a.format.TypeCounts(a.stdout, rep.TypeCounts); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout)
			if err = report.Keys(a.format, a.stdout, "bus_index", rep.BusIndexes); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout)
			if err = report.Keys(a.format, a.stdout, fleet.ColRoute, rep.Routes); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout)
			if err = report.Matrix(a.format, a.stdout, rep.Scaled); err != nil {
				return err
			}
			w, err := wide(rep.Scaled)
			if err != nil {
				return err
			}

			return a.writeFiles(w)
		},
	}
}

// wide lays p out as a table: an id column, then one column per entity.
func wide(p *matrix.Pairwise[int64]) (*table.Table, error) {
	ids := p.Entities()
	cols := make([]table.Column, 0, len(ids)+1)
	cols = append(cols, table.Ints("id", ids))
	for _, b := range ids {
		v := make([]float64, len(ids))
		for i, a := range ids {
			x, err := p.At(a, b)
			if err != nil {
				return nil, err
			}
			v[i] = x
		}
		cols = append(cols, table.Floats(fmt.Sprint(b), v))
	}

	return table.New(cols...)
}
