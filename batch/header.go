package batch

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/orbit"
)

// Header is the per-batch part of the stream: the domain size, the part
// count and the orbit built from the coset table and adjacency.
type Header struct {
	N, K       int
	Descriptor *orbit.Descriptor
}

// ReadHeader reads "n k", n coset representative blocks and the adjacency
// block, then builds the descriptor. The (k-1)-subset table comes from
// cache, or is built afresh when cache is nil.
func ReadHeader(r *Reader, cache *combin.Cache) (Header, error) {
	// 1. Dimensions, checked before anything is allocated.
	n, err := r.Int()
	if err != nil {
		return Header{}, fmt.Errorf("batch: header n: %w", err)
	}
	k, err := r.Int()
	if err != nil {
		return Header{}, fmt.Errorf("batch: header k: %w", err)
	}
	if k < 2 || k > n {
		return Header{}, fmt.Errorf("batch: header n=%d k=%d, need 2<=k<=n: %w", n, k, orbit.ErrBadDimensions)
	}

	// 2. Coset representatives.
	reps := make([][]int, 0, min(n, maxPrealloc))
	var p int
	for p = 1; p <= n; p++ {
		rep, err := block(r)
		if err != nil {
			return Header{}, fmt.Errorf("batch: cosetrep %d: %w", p, err)
		}
		reps = append(reps, rep)
	}

	// 3. Reference adjacency.
	adj, err := block(r)
	if err != nil {
		return Header{}, fmt.Errorf("batch: adjacency: %w", err)
	}

	// 4. Subset table and descriptor.
	var table *combin.Table
	if cache != nil {
		table, err = cache.Get(n, k-1)
	} else {
		table, err = combin.NewTable(n, k-1)
	}
	if err != nil {
		return Header{}, fmt.Errorf("batch: subset table: %w", err)
	}
	d, err := orbit.New(n, k, reps, adj, table)
	if err != nil {
		return Header{}, err
	}

	return Header{N: n, K: k, Descriptor: d}, nil
}

// block reads a list that must be present.
func block(r *Reader) ([]int, error) {
	list, err := r.List()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("batch: expected list at byte %d: %w", r.Offset(), ErrTruncated)
	}
	return list, err
}
