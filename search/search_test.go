package search_test

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/orbit"
	"github.com/katalvlaran/transversal/partition"
	"github.com/katalvlaran/transversal/search"
)

// triangleSquare is the 2-regular family {12,13,23,45,56,67,47} on 7 points.
func triangleSquare(t *testing.T) *orbit.Descriptor {
	t.Helper()
	members := [][]int{{1, 2}, {1, 3}, {2, 3}, {4, 5}, {5, 6}, {6, 7}, {4, 7}}
	reps := [][]int{
		{1, 2, 3, 4, 5, 6, 7},
		{2, 1, 3, 4, 5, 6, 7},
		{3, 2, 1, 4, 5, 6, 7},
		{4, 5, 7, 1, 2, 6, 3},
		{5, 4, 6, 2, 1, 3, 7},
		{6, 5, 7, 4, 2, 1, 3},
		{7, 6, 4, 3, 5, 2, 1},
	}
	d, err := orbit.FromFamily(7, 2, members, reps)
	require.NoError(t, err)

	return d
}

// rainbow reports whether some member meets every part exactly once.
func rainbow(family [][]int, labels []int, k int) bool {
	seen := make([]bool, k+1)
	for _, m := range family {
		clear(seen)
		ok := true
		for _, q := range m {
			if seen[labels[q-1]] {
				ok = false
				break
			}
			seen[labels[q-1]] = true
		}
		if ok {
			return true
		}
	}

	return false
}

// bruteForce enumerates every completion of base: points below k keep
// their label, pending points leave part k, free points take any label, and
// part k keeps at least n/k points. It reports whether all of them carry a
// transversal member.
func bruteForce(t *testing.T, d *orbit.Descriptor, base []int, pending []int) bool {
	t.Helper()
	family, err := d.Family()
	require.NoError(t, err)

	n, k := d.N(), d.K()
	labels := slices.Clone(base)
	var free []int
	for p := 1; p <= n; p++ {
		if base[p-1] == k {
			free = append(free, p)
		}
	}

	var rec func(i int) bool
	rec = func(i int) bool {
		if i == len(free) {
			inK := 0
			for _, l := range labels {
				if l == k {
					inK++
				}
			}
			if inK*k < n {
				return true
			}
			return rainbow(family, labels, k)
		}
		p := free[i]
		defer func() { labels[p-1] = k }()
		for l := 1; l <= k; l++ {
			if l == k && slices.Contains(pending, p) {
				continue
			}
			labels[p-1] = l
			if !rec(i + 1) {
				return false
			}
		}
		return true
	}

	return rec(0)
}

// assertWitness checks that w extends base and carries no transversal.
func assertWitness(t *testing.T, d *orbit.Descriptor, base, w []int) {
	t.Helper()
	family, err := d.Family()
	require.NoError(t, err)

	n, k := d.N(), d.K()
	require.Len(t, w, n)
	inK := 0
	for p := 1; p <= n; p++ {
		if base[p-1] < k {
			assert.Equal(t, base[p-1], w[p-1], "placed point %d moved", p)
		}
		if w[p-1] == k {
			inK++
		}
	}
	assert.GreaterOrEqual(t, inK*k, n, "part %d too small in %v", k, w)
	assert.False(t, rainbow(family, w, k), "witness %v has a transversal", w)
}

// seeds lists every ordered tuple of k-1 distinct points of 1..n.
func seeds(n, k int) [][]int {
	var out [][]int
	var rec func(cur []int)
	rec = func(cur []int) {
		if len(cur) == k-1 {
			out = append(out, slices.Clone(cur))
			return
		}
		for p := 1; p <= n; p++ {
			if !slices.Contains(cur, p) {
				rec(append(cur, p))
			}
		}
	}
	rec(nil)

	return out
}

func TestDecideSeed_CompleteGraphAlwaysHolds(t *testing.T) {
	d, err := orbit.Complete(4, 2)
	require.NoError(t, err)

	for p := 1; p <= 4; p++ {
		res, err := search.DecideSeed(d, []int{p})
		require.NoError(t, err)
		assert.True(t, res.Holds, "seed %d", p)
		assert.Nil(t, res.Witness)
	}

	res, err := search.DecideSeed(d, []int{1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Nodes)
	assert.Equal(t, int64(1), res.Prunes)
	assert.Equal(t, int64(0), res.Leaves)
	assert.Equal(t, 0, res.MaxDepth)
}

func TestDecideSeed_MatchingFails(t *testing.T) {
	d, err := orbit.Cyclic(4, []int{1, 3})
	require.NoError(t, err)

	var trace [][3]int
	res, err := search.DecideSeed(d, []int{1},
		search.WithWitness(),
		search.WithOnBranch(func(depth, point, label int) {
			trace = append(trace, [3]int{depth, point, label})
		}),
	)
	require.NoError(t, err)

	assert.False(t, res.Holds)
	assert.Equal(t, []int{1, 2, 1, 2}, res.Witness)
	assert.Equal(t, [][3]int{{0, 3, 1}}, trace)
	assert.Equal(t, int64(2), res.Nodes)
	assert.Equal(t, int64(1), res.Leaves)
	assert.Equal(t, 1, res.MaxDepth)
}

func TestDecideSeed_WitnessOnlyOnRequest(t *testing.T) {
	d, err := orbit.Cyclic(4, []int{1, 3})
	require.NoError(t, err)

	res, err := search.DecideSeed(d, []int{1})
	require.NoError(t, err)
	assert.False(t, res.Holds)
	assert.Nil(t, res.Witness)
}

func TestDecideSeed_TriangleSquare(t *testing.T) {
	d := triangleSquare(t)

	res, err := search.DecideSeed(d, []int{4}, search.WithWitness())
	require.NoError(t, err)
	assert.True(t, res.Holds)

	res, err = search.DecideSeed(d, []int{1}, search.WithWitness())
	require.NoError(t, err)
	assert.False(t, res.Holds)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 2}, res.Witness)
}

func TestDecide_RestoresPartition(t *testing.T) {
	d := triangleSquare(t)
	for _, depth := range []int{0, 2} {
		a, err := partition.FromSeed(7, 2, []int{1})
		require.NoError(t, err)
		before := a.Snapshot()

		first, err := search.Decide(d, a, nil, 1, search.WithParallelDepth(depth))
		require.NoError(t, err)
		assert.Equal(t, before, a.Snapshot(), "depth %d", depth)
		assert.Equal(t, 1, a.Below())

		second, err := search.Decide(d, a, partition.NewPending(), 1, search.WithParallelDepth(depth))
		require.NoError(t, err)
		assert.Equal(t, first.Holds, second.Holds)
	}
}

func TestDecide_AgreesWithBruteForce(t *testing.T) {
	for n := 3; n <= 7; n++ {
		for k := 2; k <= 3 && k <= n; k++ {
			bases, err := combin.Combinations(n, k)
			require.NoError(t, err)
			for _, base := range bases {
				if base[0] != 1 {
					continue
				}
				d, err := orbit.Cyclic(n, base)
				require.NoError(t, err)
				for _, seed := range seeds(n, k) {
					a, err := partition.FromSeed(n, k, seed)
					require.NoError(t, err)
					want := bruteForce(t, d, a.Snapshot(), nil)

					res, err := search.DecideSeed(d, seed, search.WithWitness())
					require.NoError(t, err)
					require.Equal(t, want, res.Holds, "n=%d base=%v seed=%v", n, base, seed)
					if !res.Holds {
						assertWitness(t, d, a.Snapshot(), res.Witness)
					}

					par, err := search.DecideSeed(d, seed, search.WithParallelDepth(3), search.WithWitness())
					require.NoError(t, err)
					require.Equal(t, want, par.Holds, "parallel n=%d base=%v seed=%v", n, base, seed)
					if !par.Holds {
						assertWitness(t, d, a.Snapshot(), par.Witness)
					}
				}
			}
		}
	}
}

func TestDecide_PendingPointsAgreeWithBruteForce(t *testing.T) {
	// Hexagon with seed {1} and 2 already forced out of part 2.
	d, err := orbit.Cyclic(6, []int{1, 2})
	require.NoError(t, err)

	a, err := partition.FromSeed(6, 2, []int{1})
	require.NoError(t, err)
	r := partition.NewPending(2)

	res, err := search.Decide(d, a, r, 1, search.WithCutCheck(), search.WithWitness())
	require.NoError(t, err)
	assert.True(t, res.Holds)
	assert.Equal(t, bruteForce(t, d, a.Snapshot(), []int{2}), res.Holds)
	assert.Equal(t, []int{2}, r.Points(), "caller's pending set is not modified")
}

func TestDecide_ParallelMatchesSequentialOnTriples(t *testing.T) {
	d, err := orbit.Complete(6, 3)
	require.NoError(t, err)

	for _, seed := range seeds(6, 3) {
		seq, err := search.DecideSeed(d, seed)
		require.NoError(t, err)

		var mu sync.Mutex
		calls := 0
		par, err := search.DecideSeed(d, seed,
			search.WithParallelDepth(3),
			search.WithOnBranch(func(int, int, int) {
				mu.Lock()
				calls++
				mu.Unlock()
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, seq.Holds, par.Holds, "seed %v", seed)
		if seq.MaxDepth == 0 {
			assert.Zero(t, calls, "seed %v", seed)
		}
	}
}

func TestDecide_Preconditions(t *testing.T) {
	d, err := orbit.Complete(4, 2)
	require.NoError(t, err)
	seeded := func() *partition.Partition {
		a, err := partition.FromSeed(4, 2, []int{1})
		require.NoError(t, err)
		return a
	}

	other, err := partition.New(5, 2)
	require.NoError(t, err)
	full, err := partition.FromLabels(2, []int{1, 1, 1, 2})
	require.NoError(t, err)

	cases := []struct {
		name     string
		a        *partition.Partition
		r        *partition.Pending
		newpoint int
	}{
		{"dimension mismatch", other, nil, 1},
		{"newpoint zero", seeded(), nil, 0},
		{"newpoint past n", seeded(), nil, 5},
		{"newpoint in last part", seeded(), nil, 2},
		{"pending point out of range", seeded(), partition.NewPending(7), 1},
		{"pending point already placed", seeded(), partition.NewPending(1), 1},
		{"bound exceeded", full, nil, 1},
		{"bound exceeded by pending", seeded(), partition.NewPending(2, 3), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.Decide(d, tc.a, tc.r, tc.newpoint)
			assert.ErrorIs(t, err, search.ErrPrecondition)
		})
	}
}

func TestDecide_CutCheck(t *testing.T) {
	d, err := orbit.Cyclic(6, []int{1, 2})
	require.NoError(t, err)

	// {6,1} is a transversal avoiding newpoint 2; its part-2 point must be pending.
	a, err := partition.FromLabels(2, []int{1, 1, 2, 2, 2, 2})
	require.NoError(t, err)

	_, err = search.Decide(d, a, nil, 2, search.WithCutCheck())
	assert.ErrorIs(t, err, search.ErrPrecondition)
	_, err = search.Decide(d, a, nil, 2)
	assert.NoError(t, err, "the check is opt-in")

	r := partition.NewPending(6)
	require.NoError(t, search.CheckCutConsistency(d, a, r, 2))
	res, err := search.Decide(d, a, r, 2, search.WithCutCheck())
	require.NoError(t, err)
	assert.True(t, res.Holds)
}

func TestDecide_NilAndBadSeed(t *testing.T) {
	d, err := orbit.Complete(4, 2)
	require.NoError(t, err)

	_, err = search.Decide(nil, nil, nil, 1)
	assert.ErrorIs(t, err, search.ErrNilInput)
	_, err = search.DecideSeed(nil, []int{1})
	assert.ErrorIs(t, err, search.ErrNilInput)
	_, err = search.DecideSeed(d, []int{1, 2})
	assert.ErrorIs(t, err, partition.ErrBadSeed)
	_, err = search.DecideSeed(d, []int{9})
	assert.ErrorIs(t, err, partition.ErrBadSeed)
}

func TestDecide_CancelledContext(t *testing.T) {
	d, err := orbit.Complete(4, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.DecideSeed(d, []int{1}, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithParallelDepth_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { search.WithParallelDepth(-1) })
	assert.NotPanics(t, func() { search.WithParallelDepth(0) })
}
