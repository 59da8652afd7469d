package search

import (
	"fmt"

	"github.com/katalvlaran/transversal/orbit"
	"github.com/katalvlaran/transversal/partition"
)

// Decide reports whether every admissible completion of A contains an orbit
// member that is a transversal. R may be nil (empty). A is restored to its
// original labels before Decide returns.
//
// The inputs are checked once here (see CheckPreconditions); the recursive
// search itself performs no checks.
func Decide(d *orbit.Descriptor, a *partition.Partition, r *partition.Pending, newpoint int, opts ...Option) (Result, error) {
	// 1. Validate inputs.
	if d == nil || a == nil {
		return Result{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if r == nil {
		r = partition.NewPending()
	}
	if err := CheckPreconditions(d, a, r, newpoint); err != nil {
		return Result{}, err
	}
	if o.CutCheck {
		if err := CheckCutConsistency(d, a, r, newpoint); err != nil {
			return Result{}, err
		}
	}

	// 2. Search.
	e := newEngine(d, o)
	holds := e.decide(a, r, newpoint, 0, e.newWorker(o.Ctx))

	// 3. A cancelled search has no verdict.
	if err := o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	return e.result(holds), nil
}

// DecideSeed places seed[i] in part i+1, every other point in part k, and
// decides with R empty and newpoint = seed[0]. The seed must hold k-1
// distinct points.
func DecideSeed(d *orbit.Descriptor, seed []int, opts ...Option) (Result, error) {
	if d == nil {
		return Result{}, ErrNilInput
	}
	a, err := partition.FromSeed(d.N(), d.K(), seed)
	if err != nil {
		return Result{}, fmt.Errorf("search: DecideSeed: %w", err)
	}

	return Decide(d, a, partition.NewPending(), seed[0], opts...)
}

// CheckPreconditions verifies the cheap invariants of Decide:
//   - A and d agree on n and k;
//   - newpoint lies in 1..n and is placed below k;
//   - every point of R lies in 1..n and is labeled k;
//   - (|R| + placed)·k ≤ (k-1)·n.
func CheckPreconditions(d *orbit.Descriptor, a *partition.Partition, r *partition.Pending, newpoint int) error {
	n, k := d.N(), d.K()
	if a.N() != n || a.K() != k {
		return fmt.Errorf("search: partition is (n=%d,k=%d), orbit is (n=%d,k=%d): %w", a.N(), a.K(), n, k, ErrPrecondition)
	}
	if newpoint < 1 || newpoint > n {
		return fmt.Errorf("search: newpoint %d outside 1..%d: %w", newpoint, n, ErrPrecondition)
	}
	if a.Label(newpoint) >= k {
		return fmt.Errorf("search: newpoint %d is in part %d: %w", newpoint, k, ErrPrecondition)
	}
	var count int
	if r != nil {
		for _, p := range r.Points() {
			if p < 1 || p > n {
				return fmt.Errorf("search: pending point %d outside 1..%d: %w", p, n, ErrPrecondition)
			}
			if a.Label(p) != k {
				return fmt.Errorf("search: pending point %d is in part %d: %w", p, a.Label(p), ErrPrecondition)
			}
		}
		count = r.Len()
	}
	if (count+a.Below())*k > (k-1)*n {
		return fmt.Errorf("search: %d placed + %d pending exceeds (k-1)n/k: %w", a.Below(), count, ErrPrecondition)
	}

	return nil
}

// CheckCutConsistency verifies that every orbit member avoiding newpoint
// that meets each of parts 1..k-1 exactly once has its part-k point in R.
// It costs O(n·deg·k).
func CheckCutConsistency(d *orbit.Descriptor, a *partition.Partition, r *partition.Pending, newpoint int) error {
	k := d.K()
	seen := make([]int, k+1)
	stamp := 0

	var p int
	for p = 1; p <= d.N(); p++ {
		for _, m := range d.Members(p) {
			// Visit each member once, from its smallest point.
			if m[0] != p {
				continue
			}
			stamp++
			rainbow, kpoint, hasNew := true, 0, false
			for _, q := range m {
				if q == newpoint {
					hasNew = true
				}
				l := a.Label(q)
				if seen[l] == stamp {
					rainbow = false
					break
				}
				seen[l] = stamp
				if l == k {
					kpoint = q
				}
			}
			if hasNew || !rainbow {
				continue
			}
			if r == nil || !r.Contains(kpoint) {
				return fmt.Errorf("search: member %v is a transversal up to point %d, which is not pending: %w", m, kpoint, ErrPrecondition)
			}
		}
	}

	return nil
}
