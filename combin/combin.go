// SPDX-License-Identifier: MIT
// Package: transversal/combin
//
// combin.go — Binomial and lexicographic Combinations.
//
// Contract:
//   • n ≥ m ≥ 0 (else ErrInvalidArgument).
//   • Combinations emits exactly C(n,m) subsets; entry 0 is {1,...,m}.
//   • Entry i+1 is derived from entry i by locating the rightmost position j
//     with c[j] < n-(m-j), incrementing it, and refilling the tail with
//     consecutive values.
//   • Every subset is a fresh slice; callers may keep references.
//
// Determinism:
//   • Output depends only on (n, m); no RNG, no globals.

package combin

import "math"

const (
	methodBinomial     = "Binomial"
	methodCombinations = "Combinations"

	// DefaultMaxTableSize bounds the number of subsets a single table may hold.
	DefaultMaxTableSize = 1 << 24
)

// Option customizes table construction.
type Option func(*tableConfig)

type tableConfig struct {
	maxSize int
}

// WithMaxSize overrides DefaultMaxTableSize. Panics on limit ≤ 0.
func WithMaxSize(limit int) Option {
	if limit <= 0 {
		panic("combin: WithMaxSize(limit<=0)")
	}
	return func(c *tableConfig) {
		c.maxSize = limit
	}
}

func newTableConfig(opts ...Option) tableConfig {
	cfg := tableConfig{maxSize: DefaultMaxTableSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Binomial returns the number of m-subsets of an n-set.
// The running value C(n-m+i, i) is advanced by C(n-m+i-1, i-1)·(n-m+i)/i,
// which divides exactly at every step.
func Binomial(n, m int) (int, error) {
	if n < m || m < 0 {
		return 0, combinErrorf(methodBinomial, ErrInvalidArgument, "n=%d m=%d", n, m)
	}

	b := 1
	var i, f int
	for i = 1; i <= m; i++ {
		f = n - m + i
		if b > math.MaxInt/f {
			return 0, combinErrorf(methodBinomial, ErrTooLarge, "C(%d,%d) overflows int", n, m)
		}
		b = b * f / i
	}

	return b, nil
}

// Combinations returns the m-subsets of {1,...,n} in lexicographic order,
// each sorted ascending. The slice is 0-based; the subset with 1-based index
// i is at position i-1.
func Combinations(n, m int, opts ...Option) ([][]int, error) {
	cfg := newTableConfig(opts...)

	// 1. Size the table (validates n, m and guards overflow).
	binom, err := Binomial(n, m)
	if err != nil {
		return nil, err
	}
	if binom > cfg.maxSize {
		return nil, combinErrorf(methodCombinations, ErrTooLarge, "C(%d,%d)=%d > limit %d", n, m, binom, cfg.maxSize)
	}

	comb := make([][]int, binom)

	// 2. First subset {1,...,m}.
	first := make([]int, m)
	var j int
	for j = 0; j < m; j++ {
		first[j] = j + 1
	}
	comb[0] = first

	// 3. Successors by the rightmost incrementable position.
	var i, jj int
	for i = 1; i < binom; i++ {
		prev := comb[i-1]
		cur := make([]int, m)
		for j = m - 1; j >= 0; j-- {
			// Position j (0-based) may hold at most n-(m-1-j).
			if prev[j] < n-(m-1-j) {
				copy(cur[:j], prev[:j])
				cur[j] = prev[j] + 1
				for jj = j + 1; jj < m; jj++ {
					cur[jj] = cur[jj-1] + 1
				}
				break
			}
		}
		comb[i] = cur
	}

	return comb, nil
}
