// Package transversal decides the transversal property for orbits of
// k-subsets: given a family of k-subsets of {1,...,n} closed under a
// permutation group and a partial k-partition (a seed), does every
// admissible completion of the seed contain a member that meets each part
// exactly once?
//
// What is in the module?
//
//	A small, exact backtracking solver and the plumbing around it:
//		• combin/    – lexicographic m-subset tables, Rank, a shared Cache
//		• orbit/     – the adjacency descriptor (coset table + reference adjacency),
//		               fixture orbits (Complete, Cyclic, FromFamily) and contract checks
//		• partition/ – labeled k-partitions with scoped mutation, pending sets
//		• search/    – Decide / DecideSeed with pruning, witness, statistics,
//		               cancellation and optional parallel branching
//		• batch/     – the whitespace-integer wire format and the batch driver
//		• cmd/tpsearch – CLI: run, gen, comb, check
//
// Why a separate solver?
//
//   - The outer group-theoretic enumeration emits thousands of seed queries;
//     each one is a small, self-contained search that only needs integer
//     tables, so it streams well across a process boundary.
//   - The search is exact: a false verdict comes with a counter-partition
//     that can be checked independently.
//
// Quick example (a perfect matching on four points):
//
//	{1,3} {2,4}
//
//	seed {1} → part 1 = {1}, part 2 = {2,3,4}
//	completion {1,3} | {2,4} has no member meeting both parts → false
//
//	go install github.com/katalvlaran/transversal/cmd/tpsearch@latest
package transversal
