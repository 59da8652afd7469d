package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transversal/combin"
)

// NewCombCommand creates the comb command.
func NewCombCommand(rootOpts *RootOptions) *cobra.Command {
	var maxSize int

	cmd := &cobra.Command{
		Use:   "comb <n> <m>",
		Short: "Print the lexicographic m-subsets of {1,...,n} with their indices",
		Long: `Print the table that adjacency indices refer to: one line per
m-subset, "index<TAB>points", in lexicographic order.

Example:
  tpsearch comb 5 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			if maxSize <= 0 {
				return NewExitError(ExitInvalidInput, fmt.Sprintf("--max-size must be > 0, got %d", maxSize))
			}
			comb, err := combin.Combinations(nums[0], nums[1], combin.WithMaxSize(maxSize))
			if err != nil {
				return err
			}

			var b strings.Builder
			for i, c := range comb {
				b.WriteString(strconv.Itoa(i + 1))
				b.WriteByte('\t')
				for j, x := range c {
					if j > 0 {
						b.WriteByte(' ')
					}
					b.WriteString(strconv.Itoa(x))
				}
				b.WriteByte('\n')
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().IntVar(&maxSize, "max-size", 1<<16, "refuse tables with more subsets than this")

	return cmd
}
