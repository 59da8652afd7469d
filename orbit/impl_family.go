// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// impl_family.go — FromFamily(n, k, members, cosetReps) and shared plumbing.
//
// Contract:
//   • Every member has k distinct points of 1..n (else ErrBadFamily);
//     repeated members are collapsed.
//   • The reference adjacency is {M \ {1} : 1 ∈ M}, ranked and sorted by index.
//   • The resulting descriptor must describe exactly the given family
//     (else ErrContractViolation): cosetReps has to carry the members through
//     the reference point onto every other point.

package orbit

import (
	"errors"
	"fmt"
	"slices"
)

const methodFromFamily = "FromFamily"

// FromFamily builds a descriptor for an explicit family of k-subsets and an
// explicit coset table (cosetReps[p-1] sends 1 to p).
func FromFamily(n, k int, members [][]int, cosetReps [][]int, opts ...BuildOption) (*Descriptor, error) {
	if k < 2 || k > n {
		return nil, orbitErrorf(methodFromFamily, ErrBadDimensions, "need 2<=k<=n, got n=%d k=%d", n, k)
	}

	return fromMembers(methodFromFamily, n, k, members, cosetReps, newBuildConfig(opts...))
}

func fromMembers(method string, n, k int, members [][]int, reps [][]int, cfg buildConfig) (*Descriptor, error) {
	table, err := cfg.cache.Get(n, k-1)
	if err != nil {
		return nil, orbitErrorf(method, err, "subset table")
	}

	// 1. Normalize and collapse the family.
	want := make(map[string]struct{}, len(members))
	adj := make([]int, 0)
	for i, raw := range members {
		m, err := normalizeMember(n, k, raw)
		if err != nil {
			return nil, orbitErrorf(method, ErrBadFamily, "member %d %v: %v", i+1, raw, err)
		}
		key := memberKey(m)
		if _, dup := want[key]; dup {
			continue
		}
		want[key] = struct{}{}

		// 2. Members through the reference point feed the adjacency.
		if m[0] == ReferencePoint {
			idx, err := table.Index(m[1:])
			if err != nil {
				return nil, orbitErrorf(method, ErrBadFamily, "member %v: %v", m, err)
			}
			adj = append(adj, idx)
		}
	}
	slices.Sort(adj)

	d, err := New(n, k, reps, adj, table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 3. The coset table must reproduce exactly the given family.
	got, err := d.collect()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if len(got) != len(want) {
		return nil, orbitErrorf(method, ErrContractViolation, "descriptor yields %d members, family has %d", len(got), len(want))
	}
	for key := range want {
		if _, ok := got[key]; !ok {
			return nil, orbitErrorf(method, ErrContractViolation, "member {%s} not reproduced by the coset table", key)
		}
	}

	return d, nil
}

// normalizeMember returns a sorted copy of m after checking it holds k
// distinct points of 1..n.
func normalizeMember(n, k int, m []int) ([]int, error) {
	if len(m) != k {
		return nil, fmt.Errorf("has %d points, want %d", len(m), k)
	}
	out := slices.Clone(m)
	slices.Sort(out)
	for i, x := range out {
		if x < 1 || x > n {
			return nil, fmt.Errorf("point %d outside 1..%d", x, n)
		}
		if i > 0 && out[i-1] == x {
			return nil, errors.New("repeated point")
		}
	}

	return out, nil
}
