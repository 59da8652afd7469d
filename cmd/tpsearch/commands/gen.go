package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transversal/batch"
	"github.com/katalvlaran/transversal/internal/streamio"
	"github.com/katalvlaran/transversal/orbit"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Output   string
	Compress string
}

// NewGenCommand creates the gen command with its fixture subcommands.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a fixture batch in the wire format",
		Long: `Write a batch for a well-known orbit, with one seed per
(k-1)-tuple that starts at point 1.

Example:
  tpsearch gen complete 5 3
  tpsearch gen cyclic 7 1 2 4 --compress zstd -o fano.zst`,
	}
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.PersistentFlags().StringVar(&opts.Compress, "compress", "none", "compression (none|gzip|zstd|lz4)")

	cmd.AddCommand(&cobra.Command{
		Use:           "complete <n> <k>",
		Short:         "All k-subsets of {1,...,n}",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			d, err := orbit.Complete(nums[0], nums[1])
			if err != nil {
				return err
			}
			return writeBatch(cmd, opts, d)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "cyclic <n> <base>...",
		Short:         "Rotations of a base k-subset modulo n",
		Args:          cobra.MinimumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			d, err := orbit.Cyclic(nums[0], nums[1:])
			if err != nil {
				return err
			}
			return writeBatch(cmd, opts, d)
		},
	})

	return cmd
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, NewExitError(ExitInvalidInput, fmt.Sprintf("argument %q is not an integer", a))
		}
		nums[i] = v
	}
	return nums, nil
}

func writeBatch(cmd *cobra.Command, opts *GenOptions, d *orbit.Descriptor) (err error) {
	codec, err := streamio.ParseCodec(opts.Compress)
	if err != nil {
		return err
	}
	seeds, err := batch.AnchoredSeeds(d.N(), d.K())
	if err != nil {
		return err
	}

	dst := cmd.OutOrStdout()
	if opts.Output != "" {
		var f *os.File
		if f, err = os.Create(opts.Output); err != nil {
			return WrapExitError(ExitFailure, "failed to create output", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = WrapExitError(ExitFailure, "failed to close output", cerr)
			}
		}()
		dst = f
	}

	enc, err := streamio.NewWriter(dst, codec)
	if err != nil {
		return err
	}
	w := batch.NewWriter(enc)
	if err = w.WriteHeader(d); err != nil {
		return err
	}
	for _, s := range seeds {
		if err = w.WriteSeed(s); err != nil {
			return err
		}
	}
	if err = w.Close(); err != nil {
		return err
	}

	return enc.Close()
}
