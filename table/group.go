// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Group is one bucket of a GroupMean result.
type Group[K Key] struct {
	Key   K
	Mean  float64
	Count int
}

// GroupMean buckets the rows of t by the key column and averages the value
// column per bucket. Groups come back ascending by key.
//
// Errors: ErrUnknownColumn, ErrColumnKind (key not of kind K, or value not numeric).
// Complexity: O(n + g log g) for g distinct keys.
func GroupMean[K Key](t *Table, key, value string) ([]Group[K], error) {
	keys, err := Values[K](t, key)
	if err != nil {
		return nil, fmt.Errorf("GroupMean: %w", err)
	}
	vals, err := t.Numbers(value)
	if err != nil {
		return nil, fmt.Errorf("GroupMean: %w", err)
	}

	buckets := make(map[K][]float64)
	for i, k := range keys {
		buckets[k] = append(buckets[k], vals[i])
	}

	order := make([]K, 0, len(buckets))
	for k := range buckets {
		order = append(order, k)
	}
	slices.Sort(order)

	out := make([]Group[K], len(order))
	for i, k := range order {
		b := buckets[k]
		out[i] = Group[K]{Key: k, Mean: stat.Mean(b, nil), Count: len(b)}
	}

	return out, nil
}
