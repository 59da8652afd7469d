// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// impl_cyclic.go — Cyclic(n, base): rotation orbit of a base k-subset.
//
// Contract:
//   • 2 ≤ len(base) ≤ n (else ErrBadDimensions).
//   • base holds distinct points of 1..n (else ErrBadFamily).
//   • cosetrep(p) is the rotation x ↦ x+p-1 (mod n, values in 1..n).
//   • Members are the distinct rotations of base; rotations that coincide
//     (periodic bases) are listed once.
//
// Complexity: O(n·k log k) for the orbit plus O(deg·n) for ranking.

package orbit

const methodCyclic = "Cyclic"

// Cyclic returns the descriptor of the orbit of base under the cyclic group
// generated by x ↦ x+1 (mod n).
func Cyclic(n int, base []int, opts ...BuildOption) (*Descriptor, error) {
	k := len(base)
	if k < 2 || k > n {
		return nil, orbitErrorf(methodCyclic, ErrBadDimensions, "need 2<=|base|<=n, got n=%d |base|=%d", n, k)
	}
	if _, err := normalizeMember(n, k, base); err != nil {
		return nil, orbitErrorf(methodCyclic, ErrBadFamily, "base %v: %v", base, err)
	}

	// 1. Rotations: reps[p-1] rotates by p-1.
	reps := make([][]int, n)
	var p, x int
	for p = 1; p <= n; p++ {
		rep := make([]int, n)
		for x = 1; x <= n; x++ {
			rep[x-1] = rotate(n, x, p-1)
		}
		reps[p-1] = rep
	}

	// 2. The orbit: every rotation of base.
	members := make([][]int, 0, n)
	var s int
	for s = 0; s < n; s++ {
		m := make([]int, k)
		for i, b := range base {
			m[i] = rotate(n, b, s)
		}
		members = append(members, m)
	}

	return fromMembers(methodCyclic, n, k, members, reps, newBuildConfig(opts...))
}

// rotate shifts x by s positions on the cycle 1..n.
func rotate(n, x, s int) int {
	return (x-1+s)%n + 1
}
