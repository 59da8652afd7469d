package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transversal/batch"
	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/internal/printer"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the orbit header of a batch",
		Long: `Read only the header of a batch (n, k, coset representatives and
adjacency) and verify that the coset table carries the adjacency onto a
closed family with each member listed exactly once per point.

Example:
  tpsearch gen cyclic 7 1 2 4 | tpsearch check`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rootOpts)
			if err != nil {
				return err
			}
			in, done, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer done()

			h, err := batch.ReadHeader(batch.NewReader(in), combin.NewCache(combin.WithMaxSize(cfg.MaxTableSize)))
			if err != nil {
				return err
			}
			family, err := h.Descriptor.Family()
			if err != nil {
				return err
			}

			printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr()).
				Success("ok: n=%d k=%d degree=%d members=%d\n", h.N, h.K, h.Descriptor.Degree(), len(family))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default stdin)")

	return cmd
}
