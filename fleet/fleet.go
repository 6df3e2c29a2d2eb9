// SPDX-License-Identifier: MIT

package fleet

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/table"
)

// Column names of the vehicle-count table.
const (
	ColID1     = "id_1"
	ColID2     = "id_2"
	ColRoute   = "route"
	ColCar     = "car"
	ColBus     = "bus"
	ColTruck   = "truck"
	ColCarType = "car_type"
)

// Defaults for the fleet helpers.
const (
	DefaultBusFactor  = 2.0
	DefaultTruckMin   = 7.0
	DefaultScalePivot = 20.0
	DefaultScaleAbove = 0.75
	DefaultScaleBelow = 1.25
)

const scaleDecimalPlaces = 1

// CarMatrix pivots car counts into an id_1 × id_2 matrix. Cells keep their
// direction (no symmetric fill); missing pairs and the diagonal are 0.
// Errors: matrix.ErrDuplicatePair, matrix.ErrInvalidValue, table errors.
func CarMatrix(t *table.Table) (*matrix.Pairwise[int64], error) {
	p, err := matrix.BuildFromTable[int64](t, ColID1, ColID2, ColCar, matrix.WithDirected())
	if err != nil {
		return nil, fmt.Errorf("fleet.CarMatrix: %w", err)
	}

	return p, nil
}

// BusIndexes returns the ascending row indexes whose bus count exceeds
// factor × mean(bus).
func BusIndexes(t *table.Table, factor float64) ([]int, error) {
	bus, err := t.Numbers(ColBus)
	if err != nil {
		return nil, fmt.Errorf("fleet.BusIndexes: %w", err)
	}
	if len(bus) == 0 {
		return []int{}, nil
	}
	limit := factor * stat.Mean(bus, nil)
	out := make([]int, 0)
	for i, v := range bus {
		if v > limit {
			out = append(out, i)
		}
	}

	return out, nil
}

// FilterRoutes returns the routes whose mean truck count is strictly
// greater than minMean, ascending.
func FilterRoutes(t *table.Table, minMean float64) ([]int64, error) {
	groups, err := table.GroupMean[int64](t, ColRoute, ColTruck)
	if err != nil {
		return nil, fmt.Errorf("fleet.FilterRoutes: %w", err)
	}
	out := make([]int64, 0, len(groups))
	for _, g := range groups {
		if g.Mean > minMean {
			out = append(out, g.Key)
		}
	}

	return out, nil
}

// ScaleMatrix multiplies cells above pivot by above and the rest by below,
// rounding to one decimal. The diagonal stays 0 since 0 is never above a
// non-negative pivot.
func ScaleMatrix(p *matrix.Pairwise[int64], pivot, above, below float64) (*matrix.Pairwise[int64], error) {
	hi, lo := decimal.NewFromFloat(above), decimal.NewFromFloat(below)
	out, err := p.Map(func(_, _ int64, v float64) float64 {
		f := lo
		if v > pivot {
			f = hi
		}

		return decimal.NewFromFloat(v).Mul(f).RoundBank(scaleDecimalPlaces).InexactFloat64()
	})
	if err != nil {
		return nil, fmt.Errorf("fleet.ScaleMatrix: %w", err)
	}

	return out, nil
}
