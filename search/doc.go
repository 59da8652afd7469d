// Package search decides the transversal property of an orbit of k-subsets
// over a seed partition by depth-first backtracking with an arithmetic
// pruning bound.
//
// What:
//
//   - Decide(d, A, R, newpoint, opts...): given a partial k-partition A, a set
//     R of points forced out of part k, and the most recently placed point,
//     report whether every admissible completion Q of A contains an orbit
//     member meeting each part of Q exactly once. A completion is admissible
//     when it keeps every point of parts 1..k-1 in place, keeps R out of part
//     k, and leaves |Q_k|·k ≥ n.
//   - DecideSeed(d, seed, opts...): the batch entry point; places seed[i] in
//     part i+1, starts with R empty and newpoint = seed[0].
//
// How:
//
//  1. Every member through newpoint that is a transversal of A except for
//     its part-k point forces that point out of part k; it joins R.
//  2. Once (placed + forced)·k > (k-1)·n, part k cannot keep n/k points, so
//     the claim holds vacuously and the branch returns true.
//  3. If nothing is forced, A itself is a counter-partition: false.
//  4. Otherwise the smallest forced point r is tried in each part 1..k-1.
//
// The labeling A is shared across one search and mutated through
// partition.With, so every exit path restores it. R is cloned at every call.
//
// Options:
//
//   - WithContext(ctx)          cooperative cancellation (checked every 256 nodes).
//   - WithWitness()             record the counter-partition when the claim fails.
//   - WithParallelDepth(d)      explore label branches above depth d concurrently.
//   - WithOnBranch(fn)          trace hook before each (depth, point, label) branch.
//   - WithCutCheck()            verify the cut-consistency precondition (O(n·deg·k)).
//
// Complexity:
//
//   - Worst case exponential in the number of forced points; recursion depth ≤ n.
//   - Per node: O(deg·k) scan plus one roaring clone of R.
//
// Errors:
//
//   - ErrNilInput      descriptor or partition is nil
//   - ErrPrecondition  the inputs break a caller invariant
//   - context errors   the search was cancelled
package search
