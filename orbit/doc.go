// SPDX-License-Identifier: MIT

// Package orbit describes one group-orbit of k-subsets of {1,...,n} in the
// flattened form the search engine consumes.
//
// A Descriptor holds, for every point p, a permutation (a coset
// representative) sending the reference point 1 to p, plus a single
// reference adjacency list: the 1-based indices into the (k-1)-subset table
// of the sets T such that {1} ∪ T is an orbit member. The members containing
// p are then exactly
//
//	{p} ∪ cosetrep(p)(T)   for T in the reference adjacency.
//
// The package never computes group orbits. Descriptors are built by an
// external collaborator and handed over through the batch wire format; New
// checks their shape, Validate checks the correctness contract above.
//
// The fixture constructors Complete, Cyclic and FromFamily build descriptors
// for families whose coset tables are known in closed form. They exist for
// tests, examples and the `tpsearch gen` command.
//
// Errors:
//
//   - ErrBadDimensions      k outside [2,n], or table/descriptor size mismatch
//   - ErrBadCosetRep        a coset representative is not a permutation of
//     1..n sending 1 to its point
//   - ErrBadAdjacency       an index is outside the table or names a subset
//     containing the reference point
//   - ErrBadFamily          a member list handed to a constructor is malformed
//   - ErrContractViolation  the descriptor does not enumerate an orbit
package orbit
