// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tollmatrix/config"
	"github.com/katalvlaran/tollmatrix/coverage"
	"github.com/katalvlaran/tollmatrix/fleet"
	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/rates"
	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/threshold"
)

// Runner executes pipeline stages with one configuration and logger.
type Runner struct {
	cfg    *config.Config
	log    *slog.Logger
	runID  string
	engine *rates.Engine
}

// New validates cfg's derived settings and tags log with a fresh run_id.
// A nil cfg means config.Default(); a nil log means slog.Default().
func New(cfg *config.Config, log *slog.Logger) (*Runner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	engine, err := cfg.RateEngine()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	id := uuid.NewString()

	return &Runner{cfg: cfg, log: log.With("run_id", id), runID: id, engine: engine}, nil
}

// RunID returns the identifier attached to every log record of this runner.
func (r *Runner) RunID() string { return r.runID }

// step times fn and logs its outcome.
func (r *Runner) step(name string, fn func() ([]any, error)) error {
	start := time.Now()
	r.log.Debug("stage starting", "stage", name)
	attrs, err := fn()
	attrs = append(attrs, "stage", name, "duration", time.Since(start))
	if err != nil {
		r.log.Error("stage failed", append(attrs, "err", err)...)
		return fmt.Errorf("%s: %w", name, err)
	}
	r.log.Info("stage finished", attrs...)

	return nil
}

// Distance builds the pairwise distance matrix from id_start, id_end, distance.
func (r *Runner) Distance(t *table.Table) (*matrix.Pairwise[int64], error) {
	opts, err := r.cfg.MatrixOptions()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	var p *matrix.Pairwise[int64]
	err = r.step("distance", func() ([]any, error) {
		var err error
		p, err = matrix.BuildFromTable[int64](t, matrix.ColIDStart, matrix.ColIDEnd, matrix.ColDistance, opts...)
		if err != nil {
			return []any{"rows", t.Len()}, err
		}
		if r.cfg.Matrix.Cumulative {
			if p, err = matrix.Closure(p); err != nil {
				return nil, err
			}
		}

		return []any{"rows", t.Len(), "entities", p.Size(), "cumulative", r.cfg.Matrix.Cumulative}, nil
	})

	return p, err
}

// Unroll flattens p back into id_start, id_end, distance rows.
func (r *Runner) Unroll(p *matrix.Pairwise[int64]) (*table.Table, error) {
	var out *table.Table
	err := r.step("unroll", func() ([]any, error) {
		var err error
		if out, err = matrix.UnrollTable(p); err != nil {
			return nil, err
		}

		return []any{"rows", out.Len()}, nil
	})

	return out, err
}

// Threshold returns the id_start keys within the configured band of ref.
func (r *Runner) Threshold(t *table.Table, ref int64) ([]int64, error) {
	var keys []int64
	err := r.step("threshold", func() ([]any, error) {
		var err error
		keys, err = threshold.Within(t, matrix.ColIDStart, matrix.ColDistance, ref, r.cfg.ThresholdOptions()...)
		if err != nil {
			return []any{"reference", ref}, err
		}

		return []any{"reference", ref, "matches", len(keys)}, nil
	})

	return keys, err
}

// Rates prices t. Rows without day/time columns are first expanded over the
// whole week.
func (r *Runner) Rates(t *table.Table) (*table.Table, error) {
	var out *table.Table
	err := r.step("rates", func() ([]any, error) {
		var err error
		in := t
		expanded := !t.Has(rates.ColStartDay)
		if expanded {
			if in, err = r.engine.ExpandSchedule(t); err != nil {
				return nil, err
			}
		}
		if out, err = r.engine.Apply(in); err != nil {
			return []any{"expanded", expanded}, err
		}

		return []any{"rows", out.Len(), "expanded", expanded, "categories", r.engine.Names()}, nil
	})

	return out, err
}

// Categories runs the category layer alone.
func (r *Runner) Categories(t *table.Table) (*table.Table, error) {
	var out *table.Table
	err := r.step("categories", func() ([]any, error) {
		var err error
		if out, err = r.engine.Categories(t); err != nil {
			return nil, err
		}

		return []any{"rows", out.Len()}, nil
	})

	return out, err
}

// Coverage checks weekly completeness per (id, id_2).
func (r *Runner) Coverage(t *table.Table) ([]coverage.Result, error) {
	var res []coverage.Result
	err := r.step("coverage", func() ([]any, error) {
		var err error
		if res, err = coverage.CheckTable(t); err != nil {
			return nil, err
		}
		incomplete := 0
		for _, x := range res {
			if !x.Complete {
				incomplete++
			}
		}

		return []any{"groups", len(res), "incomplete", incomplete}, nil
	})

	return res, err
}

// FleetReport gathers every vehicle-count helper result.
type FleetReport struct {
	CarMatrix  *matrix.Pairwise[int64]
	Scaled     *matrix.Pairwise[int64]
	TypeCounts []fleet.ClassCount
	BusIndexes []int
	Routes     []int64
}

// Fleet runs the vehicle-count helpers with the configured parameters.
func (r *Runner) Fleet(t *table.Table) (*FleetReport, error) {
	rep := &FleetReport{}
	err := r.step("fleet", func() ([]any, error) {
		var err error
		fc := r.cfg.Fleet
		if rep.CarMatrix, err = fleet.CarMatrix(t); err != nil {
			return nil, err
		}
		if rep.Scaled, err = fleet.ScaleMatrix(rep.CarMatrix, fc.ScalePivot, fc.ScaleAbove, fc.ScaleBelow); err != nil {
			return nil, err
		}
		if rep.TypeCounts, err = fleet.TypeCounts(t); err != nil {
			return nil, err
		}
		if rep.BusIndexes, err = fleet.BusIndexes(t, fc.BusFactor); err != nil {
			return nil, err
		}
		if rep.Routes, err = fleet.FilterRoutes(t, fc.TruckMin); err != nil {
			return nil, err
		}

		return []any{"entities", rep.CarMatrix.Size(), "bus_outliers", len(rep.BusIndexes), "routes", len(rep.Routes)}, nil
	})
	if err != nil {
		return nil, err
	}

	return rep, nil
}
