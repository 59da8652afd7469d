package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transversal/batch"
	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/internal/printer"
	"github.com/katalvlaran/transversal/internal/streamio"
	"github.com/katalvlaran/transversal/partition"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input         string
	Witness       bool
	ParallelDepth int
	CheckOrbit    bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Decide a batch read from stdin or a file",
		Long: `Decide every seed of a batch and print 1 or 0.

The input may be plain text or zstd, lz4 or gzip compressed; the format is
detected from the first bytes. Reading stops right after the first seed
that does not hold.

Example:
  tpsearch run < batch.txt
  tpsearch run --input batch.txt.lz4 --parallel-depth 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts)
		},
	}
	addRunFlags(cmd, opts)

	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input file (default stdin)")
	cmd.Flags().BoolVar(&opts.Witness, "witness", false, "print the counter-partition of a failing seed to stderr")
	cmd.Flags().IntVar(&opts.ParallelDepth, "parallel-depth", 0, "explore label branches concurrently above this depth")
	cmd.Flags().BoolVar(&opts.CheckOrbit, "check-orbit", false, "verify the orbit contract before searching")
}

// openInput returns the decoded input named by path ("" or "-" for stdin).
func openInput(cmd *cobra.Command, path string) (*streamio.Reader, func(), error) {
	var src io.Reader = cmd.InOrStdin()
	closeFile := func() {}
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, WrapExitError(ExitFailure, "failed to open input", err)
		}
		src = f
		closeFile = func() { _ = f.Close() }
	}

	r, err := streamio.NewReader(src)
	if err != nil {
		closeFile()
		return nil, nil, WrapExitError(ExitInvalidInput, "failed to decode input", err)
	}

	return r, func() { _ = r.Close(); closeFile() }, nil
}

func runBatch(cmd *cobra.Command, opts *RunOptions) error {
	cfg, err := loadConfig(cmd, opts.RootOptions)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("witness") {
		cfg.Witness = opts.Witness
	}
	if cmd.Flags().Changed("parallel-depth") {
		if opts.ParallelDepth < 0 {
			return NewExitError(ExitInvalidInput, fmt.Sprintf("--parallel-depth must be >= 0, got %d", opts.ParallelDepth))
		}
		cfg.ParallelDepth = opts.ParallelDepth
	}
	if cmd.Flags().Changed("check-orbit") {
		cfg.CheckOrbit = opts.CheckOrbit
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	in, done, err := openInput(cmd, opts.Input)
	if err != nil {
		return err
	}
	defer done()
	log.Debug("input opened", "codec", in.Codec().String())

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := batch.Driver{
		Logger:        log,
		Cache:         combin.NewCache(combin.WithMaxSize(cfg.MaxTableSize)),
		Witness:       cfg.Witness,
		ParallelDepth: cfg.ParallelDepth,
		CheckOrbit:    cfg.CheckOrbit,
	}
	sum, err := driver.Run(ctx, in, cmd.OutOrStdout())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return WrapExitError(ExitFailure, "interrupted", err)
		}
		return err
	}

	if !sum.Holds && sum.Witness != nil {
		a, err := partition.FromLabels(sum.K, sum.Witness)
		if err != nil {
			return err
		}
		p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
		p.Partition(fmt.Sprintf("witness for seed %v", sum.FailingSeed), a.Parts())
	}

	return nil
}
