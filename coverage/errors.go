// SPDX-License-Identifier: MIT

package coverage

import "errors"

// ErrReversedInterval is returned for a record whose end precedes its start
// on the Monday-to-Sunday timeline.
var ErrReversedInterval = errors.New("coverage: interval ends before it starts")
