package search

import (
	"context"
	"errors"
)

var (
	// ErrNilInput is returned when the descriptor or the partition is nil.
	ErrNilInput = errors.New("search: nil input")

	// ErrPrecondition is returned when (A, R, newpoint) break an invariant the
	// search relies on: matching dimensions, newpoint placed below k, R inside
	// part k, the counting bound, and (with WithCutCheck) cut-consistency.
	ErrPrecondition = errors.New("search: precondition violated")
)

// Option configures a search.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Witness, if true, records the counter-partition of a false verdict.
	Witness bool

	// ParallelDepth is the recursion depth below which label branches run
	// concurrently, each on its own copy of A. Zero keeps the search sequential.
	ParallelDepth int

	// OnBranch, if non-nil, is called before each branch with the recursion
	// depth, the branching point and its label. With ParallelDepth > 0 it may
	// be called from several goroutines.
	OnBranch func(depth, point, label int)

	// CutCheck, if true, verifies cut-consistency before searching.
	CutCheck bool
}

// DefaultOptions returns Options with a background context, no witness,
// sequential exploration, no hook and no cut-consistency check.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Witness:       false,
		ParallelDepth: 0,
		OnBranch:      nil,
		CutCheck:      false,
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWitness records a counter-partition when the claim fails.
func WithWitness() Option {
	return func(o *Options) {
		o.Witness = true
	}
}

// WithParallelDepth explores label branches concurrently at recursion depths
// smaller than depth. Panics on a negative depth.
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic("search: WithParallelDepth(depth<0)")
	}
	return func(o *Options) {
		o.ParallelDepth = depth
	}
}

// WithOnBranch installs a hook called before each branch.
func WithOnBranch(fn func(depth, point, label int)) Option {
	return func(o *Options) {
		o.OnBranch = fn
	}
}

// WithCutCheck verifies the cut-consistency precondition before searching.
func WithCutCheck() Option {
	return func(o *Options) {
		o.CutCheck = true
	}
}

// Result captures the verdict of a search and its diagnostics.
type Result struct {
	// Holds is the verdict.
	Holds bool

	// Witness, when Holds is false and WithWitness was given, holds the
	// labels of a counter-partition: Witness[p-1] is the part of point p.
	// No orbit member is a transversal of it.
	Witness []int

	// Nodes counts search calls, Prunes the calls closed by the bound, and
	// Leaves the calls that found nothing forced.
	Nodes, Prunes, Leaves int64

	// MaxDepth is the deepest recursion level reached (the root is 0).
	MaxDepth int
}
