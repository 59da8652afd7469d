// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// validate.go — the collaborator correctness contract.
//
// Contract checked by Validate:
//   • For every point p, each listed member {p} ∪ cosetrep(p)(T) has k
//     distinct points and no member is listed twice for p.
//   • The family is closed: a member listed for p is listed for every one of
//     its points and for no other point.
//
// Together these imply that for every point p the adjacency enumerates, once
// each, all members of the family containing p.
//
// Complexity: O(n · deg · k log k) time, O(n · deg · k) memory.

package orbit

import (
	"slices"
	"strconv"
	"strings"
)

const methodValidate = "Validate"

type familyEntry struct {
	points []int // sorted member
	listed []int // points whose adjacency produced it, ascending
}

// Validate checks the correctness contract. It is O(n·deg·k) and meant for
// the batch boundary or tests, not the search hot path.
func (d *Descriptor) Validate() error {
	_, err := d.collect()

	return err
}

// Family returns the distinct members described by d in lexicographic order,
// after checking the contract.
func (d *Descriptor) Family() ([][]int, error) {
	fam, err := d.collect()
	if err != nil {
		return nil, err
	}

	out := make([][]int, 0, len(fam))
	for _, e := range fam {
		out = append(out, e.points)
	}
	slices.SortFunc(out, func(a, b []int) int { return slices.Compare(a, b) })

	return out, nil
}

func (d *Descriptor) collect() (map[string]*familyEntry, error) {
	fam := make(map[string]*familyEntry, d.n*len(d.adj)/d.k+1)

	var p int
	for p = 1; p <= d.n; p++ {
		local := make(map[string]struct{}, len(d.adj))
		for i, m := range d.Members(p) {
			// 1. k distinct points (m is sorted).
			for j := 1; j < len(m); j++ {
				if m[j-1] == m[j] {
					return nil, orbitErrorf(methodValidate, ErrContractViolation,
						"point %d entry %d: member %v repeats %d", p, i+1, m, m[j])
				}
			}

			// 2. No duplicate listing for the same point.
			key := memberKey(m)
			if _, dup := local[key]; dup {
				return nil, orbitErrorf(methodValidate, ErrContractViolation,
					"point %d lists member %v twice", p, m)
			}
			local[key] = struct{}{}

			e, ok := fam[key]
			if !ok {
				e = &familyEntry{points: m}
				fam[key] = e
			}
			e.listed = append(e.listed, p)
		}
	}

	// 3. Closure: listed-by set equals the member itself.
	for _, e := range fam {
		if !slices.Equal(e.points, e.listed) {
			return nil, orbitErrorf(methodValidate, ErrContractViolation,
				"member %v is listed by points %v", e.points, e.listed)
		}
	}

	return fam, nil
}

// memberKey renders a sorted member as "a,b,c".
func memberKey(m []int) string {
	var sb strings.Builder
	for i, x := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}
