// SPDX-License-Identifier: MIT

package week

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/tollmatrix/table"
)

// Day is a weekday with Monday = 0.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	// SecondsPerDay is 24·3600.
	SecondsPerDay = 24 * 60 * 60

	// Cycle is the length of the weekly timeline in seconds.
	Cycle = 7 * SecondsPerDay

	// ClockLayout is the accepted clock format.
	ClockLayout = "15:04:05"
)

// ErrParse is the root of every day/time parsing failure.
var ErrParse = errors.New("week: malformed day or time")

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// String returns the English day name.
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}

	return dayNames[d]
}

// IsWeekend reports Saturday or Sunday.
func (d Day) IsWeekend() bool { return d == Saturday || d == Sunday }

// ParseDay accepts full English day names or their three-letter
// abbreviations, case-insensitively.
func ParseDay(s string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range dayNames {
		full := strings.ToLower(name)
		if v == full || v == full[:3] {
			return Day(i), nil
		}
	}

	return 0, fmt.Errorf("day %q: %w", s, ErrParse)
}

// ParseClock returns the seconds since midnight for a "15:04:05" clock.
func ParseClock(s string) (int, error) {
	ts, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("clock %q: %w: %w", s, ErrParse, err)
	}

	return ts.Hour()*3600 + ts.Minute()*60 + ts.Second(), nil
}

// FormatClock renders seconds since midnight as "15:04:05".
func FormatClock(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}

// Stamp is one point of the week: a day and a clock second within it.
type Stamp struct {
	Day   Day
	Clock int // [0, SecondsPerDay)
}

// Offset places s on the weekly timeline.
func (s Stamp) Offset() int { return int(s.Day)*SecondsPerDay + s.Clock }

// String renders "Monday 08:00:00".
func (s Stamp) String() string { return s.Day.String() + " " + FormatClock(s.Clock) }

// ParseStamp parses a day and a clock together.
func ParseStamp(day, clock string) (Stamp, error) {
	d, err := ParseDay(day)
	if err != nil {
		return Stamp{}, err
	}
	c, err := ParseClock(clock)
	if err != nil {
		return Stamp{}, err
	}

	return Stamp{Day: d, Clock: c}, nil
}

// ParseError locates a malformed cell.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error // ParseDay or ParseClock failure; wraps ErrParse
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("week: row %d: %s = %q: malformed day or time", e.Row, e.Field, e.Value)
	}

	return fmt.Sprintf("week: row %d: %s: %v", e.Row, e.Field, e.Err)
}

// Unwrap exposes the underlying cause; ErrParse when there is none.
func (e *ParseError) Unwrap() error {
	if e.Err == nil {
		return ErrParse
	}

	return e.Err
}

// ReadStamps parses the day and clock columns of t row by row.
// The first malformed cell aborts the read with a *ParseError.
//
// Errors: *ParseError, table.ErrUnknownColumn, table.ErrColumnKind.
func ReadStamps(t *table.Table, dayCol, clockCol string) ([]Stamp, error) {
	days, err := table.Values[string](t, dayCol)
	if err != nil {
		return nil, fmt.Errorf("week.ReadStamps: %w", err)
	}
	clocks, err := table.Values[string](t, clockCol)
	if err != nil {
		return nil, fmt.Errorf("week.ReadStamps: %w", err)
	}

	out := make([]Stamp, len(days))
	var d Day
	var c int
	for i := range days {
		if d, err = ParseDay(days[i]); err != nil {
			return nil, &ParseError{Row: i, Field: dayCol, Value: days[i], Err: err}
		}
		if c, err = ParseClock(clocks[i]); err != nil {
			return nil, &ParseError{Row: i, Field: clockCol, Value: clocks[i], Err: err}
		}
		out[i] = Stamp{Day: d, Clock: c}
	}

	return out, nil
}
