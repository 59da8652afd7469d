// SPDX-License-Identifier: MIT
// Package: transversal/combin
//
// table.go — 1-based subset table, lexicographic rank, and per-batch memo.
//
// Contract:
//   • Table.At(i) is valid for 1 ≤ i ≤ Len(); the returned slice is shared
//     and MUST NOT be mutated.
//   • Rank(n, s) == i  ⇔  Combinations(n, len(s))[i-1] equals s.
//   • Cache is safe for concurrent use; a (n,m) table is built at most once.

package combin

import (
	"fmt"
	"sync"
)

const (
	methodRank  = "Rank"
	methodIndex = "Index"
)

// Table is an immutable lexicographic table of the m-subsets of {1,...,n}.
type Table struct {
	n, m    int
	subsets [][]int
}

// NewTable materialises the m-subsets of {1,...,n}.
func NewTable(n, m int, opts ...Option) (*Table, error) {
	subsets, err := Combinations(n, m, opts...)
	if err != nil {
		return nil, err
	}

	return &Table{n: n, m: m, subsets: subsets}, nil
}

// N returns the size of the ground set.
func (t *Table) N() int { return t.n }

// M returns the size of every subset in the table.
func (t *Table) M() int { return t.m }

// Len returns C(n,m).
func (t *Table) Len() int { return len(t.subsets) }

// At returns the subset with 1-based index i. It panics if i is out of range,
// like a slice access; validate indices at the input boundary.
func (t *Table) At(i int) []int { return t.subsets[i-1] }

// Index returns the 1-based index of subset, which must be sorted ascending
// and have exactly M() elements.
func (t *Table) Index(subset []int) (int, error) {
	if len(subset) != t.m {
		return 0, combinErrorf(methodIndex, ErrInvalidArgument, "len=%d want %d", len(subset), t.m)
	}

	return Rank(t.n, subset)
}

// Rank returns the 1-based lexicographic index of a strictly increasing
// subset of {1,...,n} among all subsets of the same size.
//
// For c_1 < ... < c_m the number of subsets preceding c is
//
//	Σ_i Σ_{c_{i-1} < v < c_i} C(n-v, m-i)
//
// i.e. every subset that agrees on the first i-1 positions and has a smaller
// value v at position i.
func Rank(n int, subset []int) (int, error) {
	m := len(subset)
	if m > n {
		return 0, combinErrorf(methodRank, ErrInvalidArgument, "len=%d > n=%d", m, n)
	}

	var (
		rank, prev = 0, 0
		i, v, c    int
	)
	for i, c = range subset {
		if c <= prev || c > n {
			return 0, combinErrorf(methodRank, ErrInvalidArgument, "subset %v is not a sorted subset of 1..%d", subset, n)
		}
		for v = prev + 1; v < c; v++ {
			b, err := Binomial(n-v, m-i-1)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", methodRank, err)
			}
			rank += b
		}
		prev = c
	}

	return rank + 1, nil
}

type tableKey struct{ n, m int }

// Cache memoizes tables per (n, m) for the lifetime of a batch.
type Cache struct {
	mu     sync.Mutex
	opts   []Option
	tables map[tableKey]*Table
}

// NewCache returns an empty cache; opts apply to every table it builds.
func NewCache(opts ...Option) *Cache {
	return &Cache{opts: opts, tables: make(map[tableKey]*Table)}
}

// Get returns the (n, m) table, building it on first use. Failed builds are
// not cached.
func (c *Cache) Get(n, m int) (*Table, error) {
	key := tableKey{n: n, m: m}

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[key]; ok {
		return t, nil
	}
	t, err := NewTable(n, m, c.opts...)
	if err != nil {
		return nil, err
	}
	c.tables[key] = t

	return t, nil
}

// Len reports how many tables are cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tables)
}
