package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/orbit"
	"github.com/katalvlaran/transversal/partition"
)

// cancelCheckMask spaces out context checks to one per 256 nodes per worker.
const cancelCheckMask = 255

// errRefuted stops an errgroup as soon as one branch finds a counter-partition.
var errRefuted = errors.New("search: branch refuted")

// engine holds the read-only orbit data and the shared diagnostics of one
// top-level search.
type engine struct {
	n, k  int
	limit int // (k-1)·n; the bound fires when (placed+forced)·k exceeds it

	d     *orbit.Descriptor
	table *combin.Table
	adj   []int
	opts  Options

	nodes, prunes, leaves atomic.Int64
	maxDepth              atomic.Int64

	witnessMu sync.Mutex
	witness   []int
}

// worker is the per-goroutine scratch state. The injectivity markers are
// live only while one frame scans its adjacency, so a sequential search
// reuses a single worker across all frames.
type worker struct {
	ctx   context.Context
	done  <-chan struct{}
	steps int

	mark  []int // mark[label] == stamp ⇔ label seen in the current member
	stamp int
}

func newEngine(d *orbit.Descriptor, opts Options) *engine {
	return &engine{
		n:     d.N(),
		k:     d.K(),
		limit: (d.K() - 1) * d.N(),
		d:     d,
		table: d.Table(),
		adj:   d.ReferenceAdjacency(),
		opts:  opts,
	}
}

func (e *engine) newWorker(ctx context.Context) *worker {
	return &worker{ctx: ctx, done: ctx.Done(), mark: make([]int, e.k+1)}
}

// cancelled performs a sparse, non-blocking check of the worker's context.
func (w *worker) cancelled() bool {
	if w.done == nil {
		return false
	}
	w.steps++
	if w.steps&cancelCheckMask != 0 {
		return false
	}
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// forcedPoint maps c through rep and reports whether newpoint together with
// the mapped points carries k distinct labels. If so it returns the point
// labeled k.
func (e *engine) forcedPoint(a *partition.Partition, rep []int, newpoint int, c []int, w *worker) (int, bool) {
	w.stamp++
	var (
		kpoint, q int
		label     = a.Label(newpoint)
	)
	w.mark[label] = w.stamp
	if label == e.k {
		kpoint = newpoint
	}
	for _, x := range c {
		q = rep[x-1]
		label = a.Label(q)
		if w.mark[label] == w.stamp {
			return 0, false // label repeated: not a transversal
		}
		w.mark[label] = w.stamp
		if label == e.k {
			kpoint = q
		}
	}

	return kpoint, true
}

// decide is the recursive search. A is shared and restored on return; r is
// read-only here and cloned before use.
func (e *engine) decide(a *partition.Partition, r *partition.Pending, newpoint, depth int, w *worker) bool {
	e.nodes.Add(1)
	e.observeDepth(depth)

	// A cancelled search reports true; the caller discards the verdict.
	if w.cancelled() {
		return true
	}

	// 1. Own copy of R; count tracked incrementally.
	rnew := r.Clone()
	count := rnew.Len()
	placed := a.Below()

	// 2. Collect points forced out of part k by members through newpoint.
	rep := e.d.CosetRep(newpoint)
	var (
		idx, kpoint int
		ok          bool
	)
	for _, idx = range e.adj {
		kpoint, ok = e.forcedPoint(a, rep, newpoint, e.table.At(idx), w)
		if !ok || !rnew.Add(kpoint) {
			continue
		}
		count++

		// 3. Eager bound: part k can no longer hold n/k points.
		if (placed+count)*e.k > e.limit {
			e.prunes.Add(1)
			return true
		}
	}

	// 4. Nothing forced: A is a counter-partition.
	r0, ok := rnew.PopMin()
	if !ok {
		e.leaves.Add(1)
		e.recordWitness(a)
		return false
	}

	// 5. Branch on the smallest forced point.
	if depth < e.opts.ParallelDepth {
		return e.branchParallel(a, rnew, r0, depth, w)
	}
	var label int
	for label = 1; label < e.k; label++ {
		e.branchHook(depth, r0, label)
		if !a.With(r0, label, func() bool { return e.decide(a, rnew, r0, depth+1, w) }) {
			return false
		}
	}

	return true
}

// branchParallel explores the k-1 labels of r concurrently. Each branch gets
// its own copy of A and R; the first refutation cancels the others.
func (e *engine) branchParallel(a *partition.Partition, rnew *partition.Pending, r, depth int, w *worker) bool {
	g, gctx := errgroup.WithContext(w.ctx)

	var label int
	for label = 1; label < e.k; label++ {
		e.branchHook(depth, r, label)
		branch := a.Clone()
		branch.Assign(r, label)
		pending := rnew.Clone()
		g.Go(func() error {
			if !e.decide(branch, pending, r, depth+1, e.newWorker(gctx)) {
				return errRefuted
			}
			return nil
		})
	}

	return g.Wait() == nil
}

func (e *engine) branchHook(depth, point, label int) {
	if e.opts.OnBranch != nil {
		e.opts.OnBranch(depth, point, label)
	}
}

func (e *engine) observeDepth(depth int) {
	d := int64(depth)
	for {
		cur := e.maxDepth.Load()
		if d <= cur || e.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

// recordWitness keeps the first counter-partition found.
func (e *engine) recordWitness(a *partition.Partition) {
	if !e.opts.Witness {
		return
	}
	e.witnessMu.Lock()
	defer e.witnessMu.Unlock()
	if e.witness == nil {
		e.witness = a.Snapshot()
	}
}

func (e *engine) result(holds bool) Result {
	res := Result{
		Holds:    holds,
		Nodes:    e.nodes.Load(),
		Prunes:   e.prunes.Load(),
		Leaves:   e.leaves.Load(),
		MaxDepth: int(e.maxDepth.Load()),
	}
	if !holds {
		res.Witness = e.witness
	}

	return res
}
