// SPDX-License-Identifier: MIT

package rates

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tollmatrix/week"
)

// Category is one vehicle class and its static coefficient.
type Category struct {
	Name        string
	Coefficient float64
}

// Window starts at Start (seconds since midnight) and runs until the next
// window's start, the last one until midnight.
type Window struct {
	Start  int
	Factor float64
}

// DefaultWeekendFactor is the Layer 3 multiplier.
const DefaultWeekendFactor = 0.7

// DefaultCategories returns moto, car, rv, bus, truck in pricing order.
func DefaultCategories() []Category {
	return []Category{
		{Name: "moto", Coefficient: 0.1},
		{Name: "car", Coefficient: 0.3},
		{Name: "rv", Coefficient: 0.5},
		{Name: "bus", Coefficient: 0.7},
		{Name: "truck", Coefficient: 1.0},
	}
}

// DefaultWindows returns 00:00–10:00 ×0.8, 10:00–18:00 ×1.2, 18:00–23:59:59 ×0.8.
func DefaultWindows() []Window {
	return []Window{
		{Start: 0, Factor: 0.8},
		{Start: 10 * 3600, Factor: 1.2},
		{Start: 18 * 3600, Factor: 0.8},
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithCategories replaces the category list (order is column order).
func WithCategories(cs []Category) Option {
	return func(e *Engine) { e.categories = slices.Clone(cs) }
}

// WithWindows replaces the daily windows.
func WithWindows(ws []Window) Option {
	return func(e *Engine) { e.windows = slices.Clone(ws) }
}

// WithWeekendFactor sets the Layer 3 multiplier.
func WithWeekendFactor(f float64) Option {
	return func(e *Engine) { e.weekend = f }
}

// WithWindowPolicy selects how boundary-crossing rows are priced.
func WithWindowPolicy(p WindowPolicy) Option {
	return func(e *Engine) { e.windowPolicy = p }
}

// WithWeekendPolicy selects override or stacking.
func WithWeekendPolicy(p WeekendPolicy) Option {
	return func(e *Engine) { e.weekendPolicy = p }
}

func validFactor(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// validate rejects configurations that would price rows inconsistently.
func (e *Engine) validate() error {
	if len(e.categories) == 0 {
		return fmt.Errorf("no categories: %w", ErrConfig)
	}
	seen := make(map[string]struct{}, len(e.categories))
	for _, c := range e.categories {
		if c.Name == "" {
			return fmt.Errorf("empty category name: %w", ErrConfig)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("category %q twice: %w", c.Name, ErrConfig)
		}
		seen[c.Name] = struct{}{}
		if !validFactor(c.Coefficient) {
			return fmt.Errorf("category %q coefficient %v: %w", c.Name, c.Coefficient, ErrConfig)
		}
	}

	if len(e.windows) == 0 || e.windows[0].Start != 0 {
		return fmt.Errorf("windows must start at 00:00:00: %w", ErrConfig)
	}
	for i, w := range e.windows {
		if w.Start < 0 || w.Start >= week.SecondsPerDay {
			return fmt.Errorf("window %d start %d: %w", i, w.Start, ErrConfig)
		}
		if i > 0 && w.Start <= e.windows[i-1].Start {
			return fmt.Errorf("window %d not ascending: %w", i, ErrConfig)
		}
		if !validFactor(w.Factor) {
			return fmt.Errorf("window %d factor %v: %w", i, w.Factor, ErrConfig)
		}
	}

	if !validFactor(e.weekend) {
		return fmt.Errorf("weekend factor %v: %w", e.weekend, ErrConfig)
	}
	if e.windowPolicy != WindowByStart && e.windowPolicy != WindowStrict {
		return fmt.Errorf("%s: %w", e.windowPolicy, ErrConfig)
	}
	if e.weekendPolicy != WeekendOverride && e.weekendPolicy != WeekendStack {
		return fmt.Errorf("%s: %w", e.weekendPolicy, ErrConfig)
	}

	return nil
}
