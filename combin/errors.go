// SPDX-License-Identifier: MIT
// Package: transversal/combin
//
// errors.go — sentinel errors for the combin package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach method context with %w (see combinErrorf).

package combin

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that the enumerator preconditions n ≥ m ≥ 0
// do not hold, or that a subset handed to Rank/Index is not a sorted subset
// of {1,...,n} of the table's size.
var ErrInvalidArgument = errors.New("combin: invalid argument")

// ErrTooLarge indicates that C(n,m) does not fit the machine integer or that
// materialising the table would exceed MaxTableSize entries.
var ErrTooLarge = errors.New("combin: table too large")

// combinErrorf prefixes a sentinel with the method name and formatted detail,
// yielding "<method>: <detail>: <sentinel>".
func combinErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
