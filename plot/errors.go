// SPDX-License-Identifier: MIT

package plot

import "errors"

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("plot: no timing data")
