// SPDX-License-Identifier: MIT

// Package combin enumerates the m-element subsets of {1,...,n} in
// lexicographic order and gives each a stable 1-based index.
//
// What:
//
//   - Binomial(n, m): C(n,m) via C(n-1,m-1)·n/m with exact division per step.
//   - Combinations(n, m): all m-subsets, first {1,...,m}, each sorted ascending,
//     successive entries by the rightmost-incrementable-position rule.
//   - Table: immutable, 1-based view over Combinations with Index lookup.
//   - Rank(n, subset): the 1-based lexicographic index without building a table.
//   - Cache: goroutine-safe memo of tables keyed by (n, m).
//
// Why:
//
//   - The search engine addresses (k-1)-subsets by their position in this
//     table; the collaborator that writes adjacency lists must agree with it
//     bit for bit, so the order is part of the wire contract.
//
// Complexity:
//
//   - Binomial:     Time O(m), Memory O(1)
//   - Combinations: Time O(C(n,m)·m), Memory O(C(n,m)·m)
//   - Rank:         Time O(n), Memory O(1) beyond Binomial calls
//
// Errors:
//
//   - ErrInvalidArgument  n < m or m < 0
//   - ErrTooLarge         C(n,m) overflows int or exceeds MaxTableSize
package combin
