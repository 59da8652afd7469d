package partition

import "errors"

var (
	// ErrBadDimensions is returned when 2 ≤ k ≤ n does not hold.
	ErrBadDimensions = errors.New("partition: bad dimensions")

	// ErrBadLabel is returned when a label lies outside 1..k.
	ErrBadLabel = errors.New("partition: label out of range")

	// ErrBadSeed is returned when a seed does not hold k-1 distinct points of 1..n.
	ErrBadSeed = errors.New("partition: bad seed")
)
