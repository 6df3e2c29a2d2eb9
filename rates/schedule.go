// SPDX-License-Identifier: MIT

package rates

import (
	"fmt"

	"github.com/katalvlaran/tollmatrix/table"
	"github.com/katalvlaran/tollmatrix/week"
)

// ExpandSchedule repeats every row of t once per (day, window), Monday
// first, and appends start_day, start_time, end_day, end_time. Each slot
// ends on the last second of its window, so Apply prices a full week.
//
// Errors: table.ErrDuplicateColumn when t already carries the day/time columns.
// Complexity: O(7·w·n).
func (e *Engine) ExpandSchedule(t *table.Table) (*table.Table, error) {
	slots := 7 * len(e.windows)
	n := t.Len() * slots
	idx := make([]int, 0, n)
	startDay := make([]string, 0, n)
	startTime := make([]string, 0, n)
	endTime := make([]string, 0, n)

	for row := 0; row < t.Len(); row++ {
		for d := week.Monday; d <= week.Sunday; d++ {
			for i, w := range e.windows {
				idx = append(idx, row)
				startDay = append(startDay, d.String())
				startTime = append(startTime, week.FormatClock(w.Start))
				endTime = append(endTime, week.FormatClock(e.windowEnd(i)-1))
			}
		}
	}

	out, err := t.Take(idx).WithColumns(
		table.Strings(ColStartDay, startDay),
		table.Strings(ColStartTime, startTime),
		table.Strings(ColEndDay, startDay),
		table.Strings(ColEndTime, endTime),
	)
	if err != nil {
		return nil, fmt.Errorf("rates.ExpandSchedule: %w", err)
	}

	return out, nil
}
