// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// errors.go — sentinel errors for the orbit package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach "<Method>: <detail>" context with %w.

package orbit

import (
	"errors"
	"fmt"
)

// ErrBadDimensions indicates 2 ≤ k ≤ n does not hold, or that the supplied
// subset table is not the (k-1)-subset table of {1,...,n}.
var ErrBadDimensions = errors.New("orbit: bad dimensions")

// ErrBadCosetRep indicates a coset representative of the wrong length, with
// values outside 1..n, repeated images, or an image of 1 other than its point.
var ErrBadCosetRep = errors.New("orbit: bad coset representative")

// ErrBadAdjacency indicates a reference adjacency index outside 1..C(n,k-1),
// or one naming a subset that contains the reference point.
var ErrBadAdjacency = errors.New("orbit: bad reference adjacency")

// ErrBadFamily indicates a malformed member list or base set handed to a
// fixture constructor.
var ErrBadFamily = errors.New("orbit: bad member family")

// ErrContractViolation indicates that the descriptor does not enumerate,
// for each point, every orbit member containing it exactly once.
var ErrContractViolation = errors.New("orbit: adjacency contract violated")

func orbitErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
