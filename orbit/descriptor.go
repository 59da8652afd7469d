// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// descriptor.go — the immutable adjacency descriptor.
//
// Contract:
//   • 2 ≤ k ≤ n; table is the (k-1)-subset table of {1,...,n}.
//   • len(cosetReps) == n; cosetReps[p-1] is a permutation of 1..n given by
//     images (cosetReps[p-1][x-1] is the image of x) with image(1) == p.
//   • Every adjacency index lies in 1..table.Len() and names a subset that
//     does not contain the reference point 1.
//   • The descriptor never copies its inputs after New; callers hand over
//     ownership and MUST NOT mutate them afterwards.

package orbit

import (
	"slices"

	"github.com/katalvlaran/transversal/combin"
)

const (
	methodNew = "New"

	// ReferencePoint is the point whose orbit members the adjacency lists.
	ReferencePoint = 1
)

// Descriptor is a flattened, read-only description of one orbit of k-subsets.
// It is safe for concurrent use.
type Descriptor struct {
	n, k      int
	cosetReps [][]int
	adj       []int
	table     *combin.Table
}

// New validates the shape of a collaborator-supplied descriptor.
// It does not check the orbit contract itself; see Validate.
func New(n, k int, cosetReps [][]int, adj []int, table *combin.Table) (*Descriptor, error) {
	// 1. Dimensions and table.
	if k < 2 || k > n {
		return nil, orbitErrorf(methodNew, ErrBadDimensions, "need 2<=k<=n, got n=%d k=%d", n, k)
	}
	if table == nil || table.N() != n || table.M() != k-1 {
		return nil, orbitErrorf(methodNew, ErrBadDimensions, "table is not the (k-1)-subset table of 1..%d", n)
	}

	// 2. Coset representatives: n permutations, rep(1) == p.
	if len(cosetReps) != n {
		return nil, orbitErrorf(methodNew, ErrBadCosetRep, "got %d representatives, want %d", len(cosetReps), n)
	}
	seen := make([]int, n+1) // stamp per point, stamp = p
	var p, x, img int
	for p = 1; p <= n; p++ {
		rep := cosetReps[p-1]
		if len(rep) != n {
			return nil, orbitErrorf(methodNew, ErrBadCosetRep, "point %d: length %d, want %d", p, len(rep), n)
		}
		for x = 1; x <= n; x++ {
			img = rep[x-1]
			if img < 1 || img > n {
				return nil, orbitErrorf(methodNew, ErrBadCosetRep, "point %d: image of %d is %d", p, x, img)
			}
			if seen[img] == p {
				return nil, orbitErrorf(methodNew, ErrBadCosetRep, "point %d: image %d repeated", p, img)
			}
			seen[img] = p
		}
		if rep[ReferencePoint-1] != p {
			return nil, orbitErrorf(methodNew, ErrBadCosetRep, "point %d: maps %d to %d", p, ReferencePoint, rep[ReferencePoint-1])
		}
	}

	// 3. Reference adjacency: in range, reference point excluded.
	var i, idx int
	for i, idx = range adj {
		if idx < 1 || idx > table.Len() {
			return nil, orbitErrorf(methodNew, ErrBadAdjacency, "entry %d: index %d outside 1..%d", i+1, idx, table.Len())
		}
		if slices.Contains(table.At(idx), ReferencePoint) {
			return nil, orbitErrorf(methodNew, ErrBadAdjacency, "entry %d: subset %v contains %d", i+1, table.At(idx), ReferencePoint)
		}
	}

	return &Descriptor{n: n, k: k, cosetReps: cosetReps, adj: adj, table: table}, nil
}

// N returns the domain size.
func (d *Descriptor) N() int { return d.n }

// K returns the member size.
func (d *Descriptor) K() int { return d.k }

// Table returns the (k-1)-subset table the adjacency indexes into.
func (d *Descriptor) Table() *combin.Table { return d.table }

// CosetRep returns the images of 1..n under the representative for point p
// (0-based: CosetRep(p)[x-1] is the image of x). The slice is shared.
func (d *Descriptor) CosetRep(p int) []int { return d.cosetReps[p-1] }

// Image returns the image of x under the representative for point p.
func (d *Descriptor) Image(p, x int) int { return d.cosetReps[p-1][x-1] }

// ReferenceAdjacency returns the 1-based table indices of the (k-1)-subsets
// extending the reference point to an orbit member. The slice is shared.
func (d *Descriptor) ReferenceAdjacency() []int { return d.adj }

// Degree returns how many members contain each point.
func (d *Descriptor) Degree() int { return len(d.adj) }

// Members returns the orbit members containing p, each sorted ascending,
// in reference adjacency order.
func (d *Descriptor) Members(p int) [][]int {
	rep := d.cosetReps[p-1]
	out := make([][]int, 0, len(d.adj))
	for _, idx := range d.adj {
		m := make([]int, 0, d.k)
		m = append(m, p)
		for _, x := range d.table.At(idx) {
			m = append(m, rep[x-1])
		}
		slices.Sort(m)
		out = append(out, m)
	}

	return out
}
