package batch

import "errors"

var (
	// ErrMalformed is returned for a token that is not a decimal integer, an
	// integer outside the int32 range, or a negative list length.
	ErrMalformed = errors.New("batch: malformed input")

	// ErrTruncated is returned when the stream ends inside a block.
	ErrTruncated = errors.New("batch: truncated input")
)
