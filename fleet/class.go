// SPDX-License-Identifier: MIT

package fleet

import (
	"fmt"

	"github.com/katalvlaran/tollmatrix/table"
)

// CarClass bins a car count.
type CarClass int

const (
	Low CarClass = iota
	Medium
	High
)

// Upper bounds (inclusive) of the Low and Medium bins.
const (
	LowMax    = 15.0
	MediumMax = 25.0
)

// String returns the lowercase label.
func (c CarClass) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("CarClass(%d)", int(c))
	}
}

// ClassifyCar maps v onto (-inf, 15] ⇒ Low, (15, 25] ⇒ Medium, (25, inf) ⇒ High.
func ClassifyCar(v float64) CarClass {
	switch {
	case v <= LowMax:
		return Low
	case v <= MediumMax:
		return Medium
	default:
		return High
	}
}

// WithCarType returns t plus a car_type label column.
func WithCarType(t *table.Table) (*table.Table, error) {
	cars, err := t.Numbers(ColCar)
	if err != nil {
		return nil, fmt.Errorf("fleet.WithCarType: %w", err)
	}
	labels := make([]string, len(cars))
	for i, v := range cars {
		labels[i] = ClassifyCar(v).String()
	}
	out, err := t.WithColumn(table.Strings(ColCarType, labels))
	if err != nil {
		return nil, fmt.Errorf("fleet.WithCarType: %w", err)
	}

	return out, nil
}

// ClassCount is one TypeCounts entry.
type ClassCount struct {
	Class CarClass
	Count int
}

// TypeCounts counts rows per car class, ordered by label. Classes with no
// rows are omitted.
func TypeCounts(t *table.Table) ([]ClassCount, error) {
	cars, err := t.Numbers(ColCar)
	if err != nil {
		return nil, fmt.Errorf("fleet.TypeCounts: %w", err)
	}
	var counts [3]int
	for _, v := range cars {
		counts[ClassifyCar(v)]++
	}
	out := make([]ClassCount, 0, len(counts))
	for _, c := range []CarClass{High, Low, Medium} { // by label
		if counts[c] > 0 {
			out = append(out, ClassCount{Class: c, Count: counts[c]})
		}
	}

	return out, nil
}
