// SPDX-License-Identifier: MIT
// Package matrix - canonical builder for Pairwise distance matrices.
//
// Policy & Contracts:
//   - Universe: every entity seen as either endpoint, ascending.
//   - Missing pairs are 0.
//   - Symmetric fill per Reconcile (unless WithDirected).
//   - Diagonal forced to 0 after the fill, whatever the input claimed.
//   - NaN/±Inf/negative measurements fail the whole build.
//
// Determinism:
//   - Entity order is sorted, never insertion order.
//   - Every Reconcile policy is commutative, so shuffling observations
//     cannot change the result.

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tollmatrix/table"
)

// lookupIndex resolves an entity to its row/col index or returns ErrUnknownEntity.
// Complexity: O(1) expected (hash map).
func lookupIndex[K cmp.Ordered](idx map[K]int, id K) (int, error) {
	if i, ok := idx[id]; ok {
		return i, nil
	}

	return 0, fmt.Errorf("matrix: entity %v: %w", id, ErrUnknownEntity)
}

// checkValue enforces the distance domain: finite and non-negative.
func checkValue(v float64) error {
	if isNonFinite(v) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeValue
	}

	return nil
}

// Build CONSTRUCTS a Pairwise matrix from sparse observations.
// Implementation:
//   - Stage 1: validate every value (finite, non-negative).
//   - Stage 2: collect the entity universe and sort it.
//   - Stage 3: pivot into a directed V×V buffer P, rejecting duplicate
//     directed pairs; self-pairs register the entity but carry no value.
//   - Stage 4: fold P into M (mirror/sum/max, or copy when directed).
//   - Stage 5: force the diagonal to 0.
//
// Inputs:
//   - obs: observations in any order.
//   - opts: WithReconcile, WithDirected, WithEpsilon.
//
// Returns:
//   - *Pairwise[K] over the sorted universe (0×0 for empty input).
//
// Errors:
//   - ErrNaNInf / ErrNegativeValue (both errors.Is ErrInvalidValue),
//     ErrDuplicatePair, ErrConflictingPair (ReconcileMirror only).
//
// Complexity:
//   - Time O(V² + E + V log V), Space O(V²).
func Build[K cmp.Ordered](obs []Observation[K], opts ...Option) (*Pairwise[K], error) {
	o := gatherOptions(opts...)

	// --- Stage 1: value domain ---
	for i, ob := range obs {
		if err := checkValue(ob.Value); err != nil {
			return nil, fmt.Errorf("Build: observation %d (%v→%v = %v): %w", i, ob.A, ob.B, ob.Value, err)
		}
	}

	// --- Stage 2: entity universe ---
	ids := make([]K, 0, 2*len(obs))
	for _, ob := range obs {
		ids = append(ids, ob.A, ob.B)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	V := len(ids)
	idx := make(map[K]int, V)
	for i, id := range ids {
		idx[id] = i
	}

	// --- Stage 3: directed pivot ---
	pivot, err := NewDense(V, V)
	if err != nil {
		return nil, fmt.Errorf("Build: NewDense(%d,%d): %w", V, V, err)
	}
	seen := make(map[pairKey]struct{}, len(obs))
	var src, dst int
	for _, ob := range obs {
		if src, err = lookupIndex(idx, ob.A); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if dst, err = lookupIndex(idx, ob.B); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if src == dst {
			continue // self-pair: entity registered, value discarded
		}
		key := pairKey{u: src, v: dst}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("Build: %v→%v: %w", ob.A, ob.B, ErrDuplicatePair)
		}
		seen[key] = struct{}{}
		pivot.data[src*V+dst] = ob.Value
	}

	// --- Stage 4: fold ---
	out, err := NewDense(V, V)
	if err != nil {
		return nil, fmt.Errorf("Build: NewDense(%d,%d): %w", V, V, err)
	}
	if o.directed {
		copy(out.data, pivot.data)
	} else {
		var i, j int
		var v float64
		for i = 0; i < V; i++ {
			for j = i + 1; j < V; j++ {
				_, hasFwd := seen[pairKey{u: i, v: j}]
				_, hasBack := seen[pairKey{u: j, v: i}]
				v, err = o.reconcile.fold(pivot.data[i*V+j], pivot.data[j*V+i], hasFwd, hasBack, o.eps)
				if err != nil {
					return nil, fmt.Errorf("Build: %v↔%v: %w", ids[i], ids[j], err)
				}
				// Set rejects a Sum that overflowed to +Inf.
				if err = out.Set(i, j, v); err != nil {
					return nil, fmt.Errorf("Build: %v↔%v: %w", ids[i], ids[j], err)
				}
				out.data[j*V+i] = v
			}
		}
	}

	// --- Stage 5: zero diagonal ---
	for i := 0; i < V; i++ {
		out.data[i*V+i] = 0
	}

	return newPairwise(ids, out), nil
}

// fold combines the forward and backward pivot cells of one unordered pair.
func (r Reconcile) fold(fwd, back float64, hasFwd, hasBack bool, eps float64) (float64, error) {
	switch {
	case !hasFwd && !hasBack:
		return 0, nil
	case hasFwd && !hasBack:
		return fwd, nil
	case !hasFwd && hasBack:
		return back, nil
	}

	switch r {
	case ReconcileSum:
		return fwd + back, nil
	case ReconcileMax:
		return math.Max(fwd, back), nil
	default:
		if math.Abs(fwd-back) > eps {
			return 0, fmt.Errorf("%v vs %v: %w", fwd, back, ErrConflictingPair)
		}

		return fwd, nil
	}
}

// BuildFromTable reads observations from three columns of t and delegates
// to Build. The key columns must hold kind K; the value column must be
// numeric (int or float).
//
// Errors:
//   - ErrInvalidValue when the value column is not numeric (joined with
//     the table error), plus everything Build returns.
//   - table.ErrUnknownColumn / table.ErrColumnKind for the key columns.
func BuildFromTable[K table.Key](t *table.Table, aCol, bCol, valueCol string, opts ...Option) (*Pairwise[K], error) {
	as, err := table.Values[K](t, aCol)
	if err != nil {
		return nil, fmt.Errorf("BuildFromTable: %w", err)
	}
	bs, err := table.Values[K](t, bCol)
	if err != nil {
		return nil, fmt.Errorf("BuildFromTable: %w", err)
	}
	vs, err := t.Numbers(valueCol)
	if err != nil {
		return nil, fmt.Errorf("BuildFromTable: %w: %w", ErrInvalidValue, err)
	}

	obs := make([]Observation[K], t.Len())
	for i := range obs {
		obs[i] = Observation[K]{A: as[i], B: bs[i], Value: vs[i]}
	}

	return Build(obs, opts...)
}
