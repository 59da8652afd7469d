package commands

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transversal/batch"
	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/internal/streamio"
	"github.com/katalvlaran/transversal/orbit"
	"github.com/katalvlaran/transversal/partition"
	"github.com/katalvlaran/transversal/search"
)

// Exit codes. Any nonzero code means the verdict is unknown.
const (
	ExitSuccess           = 0 // verdict written (either 0 or 1)
	ExitFailure           = 1 // I/O, cancellation and usage errors
	ExitInvalidInput      = 2 // malformed stream, bad dimensions, bad orbit data
	ExitResourceExhausted = 3 // subset table too large
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

var invalidInput = []error{
	batch.ErrMalformed,
	batch.ErrTruncated,
	combin.ErrInvalidArgument,
	orbit.ErrBadDimensions,
	orbit.ErrBadCosetRep,
	orbit.ErrBadAdjacency,
	orbit.ErrBadFamily,
	orbit.ErrContractViolation,
	partition.ErrBadDimensions,
	partition.ErrBadLabel,
	partition.ErrBadSeed,
	search.ErrPrecondition,
	streamio.ErrUnknownCodec,
}

// ExitCode maps err to a process exit code: an ExitError carries its own,
// library sentinels map to their category, anything else is ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, combin.ErrTooLarge) {
		return ExitResourceExhausted
	}
	for _, sentinel := range invalidInput {
		if errors.Is(err, sentinel) {
			return ExitInvalidInput
		}
	}
	return ExitFailure
}
