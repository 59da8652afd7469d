package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/search"
)

// Driver decides a batch. The zero value is ready to use: it logs nothing,
// keeps no witness and searches sequentially.
type Driver struct {
	// Logger receives the header shape, per-query verdicts (debug) and the
	// summary (info). Nil discards.
	Logger *slog.Logger

	// Cache supplies subset tables; nil builds a fresh cache per run.
	Cache *combin.Cache

	// Witness records the counter-partition of the failing seed.
	Witness bool

	// ParallelDepth is passed to search.WithParallelDepth.
	ParallelDepth int

	// CheckOrbit runs orbit.Descriptor.Validate on the header before any
	// query. It costs O(n·deg·k log k).
	CheckOrbit bool
}

// Summary reports what a run did.
type Summary struct {
	RunID   string
	N, K    int
	Degree  int
	Queries int

	// Holds is the verdict written to the output.
	Holds bool

	// FailingSeed and Witness describe the first seed that did not hold.
	// Witness is set only when Driver.Witness is.
	FailingSeed []int
	Witness     []int

	Nodes, Prunes, Leaves int64
	MaxDepth              int

	Elapsed time.Duration
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

func (d *Driver) searchOptions(ctx context.Context) []search.Option {
	opts := []search.Option{search.WithContext(ctx), search.WithParallelDepth(d.ParallelDepth)}
	if d.Witness {
		opts = append(opts, search.WithWitness())
	}
	return opts
}

// Run reads a header from src, decides seeds until the terminator, the end
// of the stream or the first seed that does not hold, and writes the
// verdict to w. On error nothing is written and the Summary is partial.
func (d *Driver) Run(ctx context.Context, src io.ByteScanner, w io.Writer) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: uuid.NewString(), Holds: true}
	log := d.logger().With(slog.String("run", sum.RunID))

	// 1. Header.
	cache := d.Cache
	if cache == nil {
		cache = combin.NewCache()
	}
	r := NewReader(src)
	h, err := ReadHeader(r, cache)
	if err != nil {
		return sum, err
	}
	sum.N, sum.K, sum.Degree = h.N, h.K, h.Descriptor.Degree()
	log.Info("batch header", "n", h.N, "k", h.K, "degree", sum.Degree)

	if d.CheckOrbit {
		if err = h.Descriptor.Validate(); err != nil {
			return sum, err
		}
		log.Debug("orbit contract verified")
	}

	// 2. Seeds. A clean end of stream counts as the terminator.
	opts := d.searchOptions(ctx)
	for {
		if err = ctx.Err(); err != nil {
			return sum, err
		}
		seed, err := r.List()
		if errors.Is(err, io.EOF) || (err == nil && len(seed) == 0) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("batch: query %d: %w", sum.Queries+1, err)
		}

		res, err := search.DecideSeed(h.Descriptor, seed, opts...)
		if err != nil {
			return sum, fmt.Errorf("batch: query %d seed %v: %w", sum.Queries+1, seed, err)
		}
		sum.Queries++
		sum.Nodes += res.Nodes
		sum.Prunes += res.Prunes
		sum.Leaves += res.Leaves
		sum.MaxDepth = max(sum.MaxDepth, res.MaxDepth)
		log.Debug("query decided", "query", sum.Queries, "seed", seed, "holds", res.Holds, "nodes", res.Nodes)

		if !res.Holds {
			sum.Holds = false
			sum.FailingSeed = seed
			sum.Witness = res.Witness
			break
		}
	}

	// 3. Verdict.
	verdict := 1
	if !sum.Holds {
		verdict = 0
	}
	if _, err = fmt.Fprintf(w, "%d\n", verdict); err != nil {
		return sum, fmt.Errorf("batch: write verdict: %w", err)
	}
	sum.Elapsed = time.Since(start)
	log.Info("batch done",
		"holds", sum.Holds,
		"queries", sum.Queries,
		"nodes", sum.Nodes,
		"prunes", sum.Prunes,
		"elapsed", sum.Elapsed,
	)

	return sum, nil
}
