// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// impl_complete.go — Complete(n, k): all k-subsets under Sym(n).
//
// Contract:
//   • 2 ≤ k ≤ n (else ErrBadDimensions).
//   • cosetrep(1) is the identity, cosetrep(p) the transposition (1 p).
//   • The reference adjacency is every (k-1)-subset of {2,...,n}, in table order.
//
// Complexity: O(n² + C(n,k-1)) time and memory.

package orbit

const methodComplete = "Complete"

// Complete returns the descriptor of the orbit of all k-subsets of {1,...,n}.
func Complete(n, k int, opts ...BuildOption) (*Descriptor, error) {
	if k < 2 || k > n {
		return nil, orbitErrorf(methodComplete, ErrBadDimensions, "need 2<=k<=n, got n=%d k=%d", n, k)
	}
	cfg := newBuildConfig(opts...)

	table, err := cfg.cache.Get(n, k-1)
	if err != nil {
		return nil, orbitErrorf(methodComplete, err, "subset table")
	}

	// Transpositions (1 p).
	reps := make([][]int, n)
	var p, x int
	for p = 1; p <= n; p++ {
		rep := make([]int, n)
		for x = 1; x <= n; x++ {
			rep[x-1] = x
		}
		rep[0], rep[p-1] = p, ReferencePoint
		reps[p-1] = rep
	}

	// Every subset avoiding the reference point; sorted subsets avoid 1
	// exactly when their first element is not 1.
	adj := make([]int, 0, table.Len())
	var i int
	for i = 1; i <= table.Len(); i++ {
		if table.At(i)[0] != ReferencePoint {
			adj = append(adj, i)
		}
	}

	return New(n, k, reps, adj, table)
}
