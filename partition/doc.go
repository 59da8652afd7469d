// Package partition holds the mutable search state: an ordered k-partition
// of {1,...,n} given as a labeling, and the set of pending points.
//
// A Partition labels every point with a part in 1..k. Points labeled k are
// the unassigned remainder; Below counts the points already placed in parts
// 1..k-1 and is maintained incrementally by Assign.
//
// Mutation during search goes through With, which sets a label, runs a
// callback, and restores the previous label on every exit path. Siblings in a
// backtracking tree therefore always observe the same baseline.
//
// Pending is the set R of points labeled k that are forced out of part k.
// It is backed by a roaring bitmap; Clone gives each search frame its own
// isolated copy, and PopMin fixes the branching order to the smallest point.
package partition
