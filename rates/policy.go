// SPDX-License-Identifier: MIT

package rates

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowSpan indicates a row that leaves its time window under WindowStrict.
	ErrWindowSpan = errors.New("rates: row spans time windows")

	// ErrInvalidDistance indicates a NaN, ±Inf or negative base distance.
	ErrInvalidDistance = errors.New("rates: invalid distance")

	// ErrConfig indicates an engine configuration that cannot price anything.
	ErrConfig = errors.New("rates: invalid engine configuration")
)

// WindowPolicy resolves rows whose [start, end] crosses a window boundary.
type WindowPolicy int

const (
	// WindowByStart prices by the window containing the start clock.
	WindowByStart WindowPolicy = iota

	// WindowStrict requires start and end inside one window on one day.
	WindowStrict
)

// String implements fmt.Stringer.
func (p WindowPolicy) String() string {
	switch p {
	case WindowByStart:
		return "start"
	case WindowStrict:
		return "strict"
	default:
		return fmt.Sprintf("WindowPolicy(%d)", int(p))
	}
}

// ParseWindowPolicy maps "start" / "strict" to a policy; "" is the default.
func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch s {
	case "", "start":
		return WindowByStart, nil
	case "strict":
		return WindowStrict, nil
	default:
		return 0, fmt.Errorf("rates: unknown window policy %q: %w", s, ErrConfig)
	}
}

// WeekendPolicy decides how the weekend factor meets the window factor.
type WeekendPolicy int

const (
	// WeekendOverride replaces the window factor on weekend rows.
	WeekendOverride WeekendPolicy = iota

	// WeekendStack multiplies the window factor by the weekend factor.
	WeekendStack
)

// String implements fmt.Stringer.
func (p WeekendPolicy) String() string {
	switch p {
	case WeekendOverride:
		return "override"
	case WeekendStack:
		return "stack"
	default:
		return fmt.Sprintf("WeekendPolicy(%d)", int(p))
	}
}

// ParseWeekendPolicy maps "override" / "stack" to a policy; "" is the default.
func ParseWeekendPolicy(s string) (WeekendPolicy, error) {
	switch s {
	case "", "override":
		return WeekendOverride, nil
	case "stack":
		return WeekendStack, nil
	default:
		return 0, fmt.Errorf("rates: unknown weekend policy %q: %w", s, ErrConfig)
	}
}
