// SPDX-License-Identifier: MIT
// Package matrix provides converters from Pairwise matrices back to long form.
package matrix

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/tollmatrix/table"
)

// Unroll flattens p into one observation per ordered pair (a,b), a≠b.
// Rows follow the matrix's row order, then its column order; the diagonal
// is skipped unconditionally. Zero cells are emitted, so the entity
// universe survives a round trip through Build.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(V²).
func Unroll[K cmp.Ordered](p *Pairwise[K]) ([]Observation[K], error) {
	if err := ValidateAxis(p); err != nil {
		return nil, fmt.Errorf("Unroll: %w", err)
	}
	V := len(p.ids)
	if V < 2 {
		return []Observation[K]{}, nil
	}
	out := make([]Observation[K], 0, V*(V-1))
	p.mat.Do(func(i, j int, v float64) bool {
		if i != j {
			out = append(out, Observation[K]{A: p.ids[i], B: p.ids[j], Value: v})
		}

		return true
	})

	return out, nil
}

// UnrollTable is Unroll rendered as a table with columns
// id_start, id_end, distance.
func UnrollTable[K table.Key](p *Pairwise[K]) (*table.Table, error) {
	obs, err := Unroll(p)
	if err != nil {
		return nil, err
	}

	return ObservationsTable(obs)
}

// ObservationsTable renders observations as id_start, id_end, distance columns.
func ObservationsTable[K table.Key](obs []Observation[K]) (*table.Table, error) {
	starts := make([]K, len(obs))
	ends := make([]K, len(obs))
	dists := make([]float64, len(obs))
	for i, ob := range obs {
		starts[i], ends[i], dists[i] = ob.A, ob.B, ob.Value
	}

	return table.New(
		table.NewColumn(ColIDStart, starts),
		table.NewColumn(ColIDEnd, ends),
		table.Floats(ColDistance, dists),
	)
}
