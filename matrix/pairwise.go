// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

// Pairwise is a square Dense indexed by a sorted entity universe.
// Row i and column i both refer to ids[i].
type Pairwise[K cmp.Ordered] struct {
	ids   []K       // ascending, distinct
	index map[K]int // id → row/col index
	mat   *Dense    // len(ids) × len(ids)
}

// NewPairwise wraps mat with the entity axis ids.
// Implementation:
//   - Stage 1: require mat square and len(ids) == Rows().
//   - Stage 2: require ids strictly ascending (sorted, distinct).
//   - Stage 3: copy both so the caller keeps ownership of its inputs.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(V²) for the copy.
func NewPairwise[K cmp.Ordered](ids []K, mat *Dense) (*Pairwise[K], error) {
	if mat == nil {
		return nil, fmt.Errorf("NewPairwise: %w", ErrNilMatrix)
	}
	if err := ValidateSquare(mat); err != nil {
		return nil, fmt.Errorf("NewPairwise: %w", err)
	}
	if len(ids) != mat.Rows() {
		return nil, fmt.Errorf("NewPairwise: %d ids for %d rows: %w", len(ids), mat.Rows(), ErrDimensionMismatch)
	}
	for i := 1; i < len(ids); i++ {
		if cmp.Compare(ids[i-1], ids[i]) >= 0 {
			return nil, fmt.Errorf("NewPairwise: ids not strictly ascending at %d: %w", i, ErrDimensionMismatch)
		}
	}

	return newPairwise(slices.Clone(ids), mat.clone()), nil
}

// newPairwise assembles without validation; callers own ids and mat.
func newPairwise[K cmp.Ordered](ids []K, mat *Dense) *Pairwise[K] {
	index := make(map[K]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &Pairwise[K]{ids: ids, index: index, mat: mat}
}

// Size returns the number of entities (rows == cols).
func (p *Pairwise[K]) Size() int { return len(p.ids) }

// Entities returns a copy of the entity axis in matrix order.
func (p *Pairwise[K]) Entities() []K { return slices.Clone(p.ids) }

// Index resolves an entity to its row/column index.
func (p *Pairwise[K]) Index(id K) (int, bool) {
	i, ok := p.index[id]

	return i, ok
}

// At returns M[a,b].
// Errors: ErrUnknownEntity.
// Complexity: O(1) expected.
func (p *Pairwise[K]) At(a, b K) (float64, error) {
	i, ok := p.index[a]
	if !ok {
		return 0, fmt.Errorf("Pairwise.At: %v: %w", a, ErrUnknownEntity)
	}
	j, ok := p.index[b]
	if !ok {
		return 0, fmt.Errorf("Pairwise.At: %v: %w", b, ErrUnknownEntity)
	}

	return p.mat.At(i, j)
}

// Dense returns a deep copy of the underlying storage.
func (p *Pairwise[K]) Dense() *Dense { return p.mat.clone() }

// Clone returns an independent copy.
func (p *Pairwise[K]) Clone() *Pairwise[K] {
	return newPairwise(slices.Clone(p.ids), p.mat.clone())
}

// Equal reports identical entity axes and identical cell values.
func (p *Pairwise[K]) Equal(o *Pairwise[K]) bool {
	if p == nil || o == nil {
		return p == o
	}

	return slices.Equal(p.ids, o.ids) && p.mat.Equal(o.mat)
}

// Map returns a new Pairwise with every cell replaced by f(a, b, v).
// The receiver is untouched; on error no partial result escapes.
// Errors: ErrNaNInf when f produces a non-finite value.
// Complexity: O(V²).
func (p *Pairwise[K]) Map(f func(a, b K, v float64) float64) (*Pairwise[K], error) {
	out := p.Clone()
	err := out.mat.Apply(func(i, j int, v float64) float64 {
		return f(p.ids[i], p.ids[j], v)
	})
	if err != nil {
		return nil, fmt.Errorf("Pairwise.Map: %w", err)
	}

	return out, nil
}

// String renders the entity axis followed by the matrix rows.
func (p *Pairwise[K]) String() string {
	return fmt.Sprintf("%v\n%s", p.ids, p.mat.String())
}
