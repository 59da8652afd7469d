package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/orbit"
)

// Writer encodes batches in the wire format, one block per line.
// Call Close to emit the terminator and flush.
type Writer struct {
	bw  *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer buffering into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) line(head int, items []int) error {
	w.buf = strconv.AppendInt(w.buf[:0], int64(head), 10)
	for _, v := range items {
		w.buf = append(w.buf, ' ')
		w.buf = strconv.AppendInt(w.buf, int64(v), 10)
	}
	w.buf = append(w.buf, '\n')
	_, err := w.bw.Write(w.buf)
	return err
}

// WriteHeader writes "n k", the coset table and the reference adjacency of d.
func (w *Writer) WriteHeader(d *orbit.Descriptor) error {
	if err := w.line(d.N(), []int{d.K()}); err != nil {
		return err
	}
	var p int
	for p = 1; p <= d.N(); p++ {
		if err := w.line(d.N(), d.CosetRep(p)); err != nil {
			return err
		}
	}
	adj := d.ReferenceAdjacency()
	return w.line(len(adj), adj)
}

// WriteSeed writes one seed block.
func (w *Writer) WriteSeed(seed []int) error {
	return w.line(len(seed), seed)
}

// Close writes the 0 terminator and flushes. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	if err := w.line(0, nil); err != nil {
		return err
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("batch: flush: %w", err)
	}
	return nil
}

// AnchoredSeeds lists the seeds whose first point is 1: (1, s...) for every
// (k-2)-subset s of {2,...,n} in lexicographic order.
func AnchoredSeeds(n, k int) ([][]int, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("batch: AnchoredSeeds(n=%d, k=%d): %w", n, k, orbit.ErrBadDimensions)
	}
	rest, err := combin.Combinations(n-1, k-2)
	if err != nil {
		return nil, err
	}

	seeds := make([][]int, len(rest))
	for i, s := range rest {
		seed := make([]int, 0, k-1)
		seed = append(seed, 1)
		for _, x := range s {
			seed = append(seed, x+1)
		}
		seeds[i] = seed
	}

	return seeds, nil
}
