package partition

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Partition is an ordered k-partition of {1,...,n} stored as labels.
// It is not safe for concurrent mutation; use Clone to hand a copy to
// another goroutine.
type Partition struct {
	k      int
	labels []int // labels[p-1] is the part of point p
	below  int   // number of points with label < k
}

// New returns the partition with every point in part k.
func New(n, k int) (*Partition, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("partition: New(n=%d, k=%d): %w", n, k, ErrBadDimensions)
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = k
	}

	return &Partition{k: k, labels: labels}, nil
}

// FromSeed places seed[i] in part i+1 and every other point in part k.
// The seed must hold exactly k-1 distinct points of 1..n.
func FromSeed(n, k int, seed []int) (*Partition, error) {
	a, err := New(n, k)
	if err != nil {
		return nil, err
	}
	if len(seed) != k-1 {
		return nil, fmt.Errorf("partition: seed %v has %d points, want %d: %w", seed, len(seed), k-1, ErrBadSeed)
	}
	for i, p := range seed {
		if p < 1 || p > n {
			return nil, fmt.Errorf("partition: seed point %d outside 1..%d: %w", p, n, ErrBadSeed)
		}
		if a.labels[p-1] != k {
			return nil, fmt.Errorf("partition: seed point %d repeated: %w", p, ErrBadSeed)
		}
		a.Assign(p, i+1)
	}

	return a, nil
}

// FromLabels builds a partition from explicit labels (labels[p-1] is the
// part of p). The slice is copied.
func FromLabels(k int, labels []int) (*Partition, error) {
	a, err := New(len(labels), k)
	if err != nil {
		return nil, err
	}
	for i, l := range labels {
		if l < 1 || l > k {
			return nil, fmt.Errorf("partition: point %d has label %d outside 1..%d: %w", i+1, l, k, ErrBadLabel)
		}
		a.Assign(i+1, l)
	}

	return a, nil
}

// N returns the number of points.
func (a *Partition) N() int { return len(a.labels) }

// K returns the number of parts.
func (a *Partition) K() int { return a.k }

// Label returns the part of point p.
func (a *Partition) Label(p int) int { return a.labels[p-1] }

// Below returns how many points carry a label smaller than k.
func (a *Partition) Below() int { return a.below }

// Assign moves point p to part label. The label is not range-checked.
func (a *Partition) Assign(p, label int) {
	old := a.labels[p-1]
	if old < a.k {
		a.below--
	}
	if label < a.k {
		a.below++
	}
	a.labels[p-1] = label
}

// With moves p to part label for the duration of fn and returns fn's result.
// The previous label is restored on every exit path, panics included.
func (a *Partition) With(p, label int, fn func() bool) bool {
	prev := a.labels[p-1]
	a.Assign(p, label)
	defer a.Assign(p, prev)

	return fn()
}

// Snapshot returns a copy of the labels (index p-1 holds the part of p).
func (a *Partition) Snapshot() []int { return slices.Clone(a.labels) }

// Clone returns an independent copy.
func (a *Partition) Clone() *Partition {
	return &Partition{k: a.k, labels: slices.Clone(a.labels), below: a.below}
}

// Parts returns the points of parts 1..k, each ascending.
func (a *Partition) Parts() [][]int {
	parts := make([][]int, a.k)
	for i, l := range a.labels {
		parts[l-1] = append(parts[l-1], i+1)
	}

	return parts
}

// String renders the parts as "[1 4 | 2 | 3 5]".
func (a *Partition) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, part := range a.Parts() {
		if i > 0 {
			sb.WriteString(" |")
		}
		for j, p := range part {
			if i > 0 || j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(p))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
