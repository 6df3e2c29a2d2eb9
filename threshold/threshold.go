// SPDX-License-Identifier: MIT

package threshold

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tollmatrix/table"
)

// ErrNotFound indicates the reference key has no rows.
var ErrNotFound = errors.New("threshold: reference key not found")

// DefaultBand is the relative half-width of the band (10%).
const DefaultBand = 0.10

const panicBandInvalid = "threshold: WithBand: band must be finite, non-negative"

// Option configures Within.
type Option func(*options)

type options struct {
	band       float64
	includeRef bool
}

// WithBand sets the relative half-width. Panics when band is NaN, ±Inf or negative.
func WithBand(band float64) Option {
	if math.IsNaN(band) || math.IsInf(band, 0) || band < 0 {
		panic(panicBandInvalid)
	}

	return func(o *options) { o.band = band }
}

// ExcludeReference drops the reference key from the result.
func ExcludeReference() Option {
	return func(o *options) { o.includeRef = false }
}

// Bounds returns the closed band [ref − |ref|·band, ref + |ref|·band].
func Bounds(ref, band float64) (lo, hi float64) {
	d := math.Abs(ref) * band

	return ref - d, ref + d
}

// Within returns the keys of keyCol whose mean of valCol lies in the band
// around ref's mean, ascending.
//
// Errors: ErrNotFound, table.ErrUnknownColumn, table.ErrColumnKind.
// Complexity: O(n + g log g).
func Within[K table.Key](t *table.Table, keyCol, valCol string, ref K, opts ...Option) ([]K, error) {
	o := options{band: DefaultBand, includeRef: true}
	for _, set := range opts {
		set(&o)
	}

	groups, err := table.GroupMean[K](t, keyCol, valCol)
	if err != nil {
		return nil, fmt.Errorf("threshold.Within: %w", err)
	}

	refMean, found := 0.0, false
	for _, g := range groups {
		if g.Key == ref {
			refMean, found = g.Mean, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("threshold.Within: %v: %w", ref, ErrNotFound)
	}

	lo, hi := Bounds(refMean, o.band)
	out := make([]K, 0, len(groups))
	for _, g := range groups {
		if g.Key == ref && !o.includeRef {
			continue
		}
		if g.Mean >= lo && g.Mean <= hi {
			out = append(out, g.Key)
		}
	}

	return out, nil
}

// Table renders keys as a single-column table named keyCol.
func Table[K table.Key](keyCol string, keys []K) (*table.Table, error) {
	return table.New(table.NewColumn(keyCol, keys))
}
