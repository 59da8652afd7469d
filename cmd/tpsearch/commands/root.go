package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transversal/internal/printer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	LogFormat  string
}

// NewRootCommand creates the tpsearch command tree. Without a subcommand it
// behaves like "tpsearch run".
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	runOpts := &RunOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "tpsearch",
		Short: "Decide the transversal property for seeds of a k-subset orbit",
		Long: `tpsearch reads an orbit of k-subsets of {1,...,n} (as coset
representatives and a reference adjacency) followed by seed partitions, and
prints 1 if every completion of every seed contains a member meeting each
part exactly once, or 0 at the first seed where some completion does not.

Example:
  tpsearch gen complete 5 3 | tpsearch
  tpsearch run --input batch.txt.zst --witness -v`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, runOpts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")
	addRunFlags(cmd, runOpts)

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCombCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI on the process arguments and returns the exit code.
func Execute() int {
	return Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Main runs the CLI with explicit arguments and streams. Errors are printed
// to stderr with colors; the exit code follows ExitCode.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	code := ExitCode(err)
	p := printer.New(stdout, stderr)
	switch code {
	case ExitInvalidInput:
		p.Error("invalid input", err.Error(), []string{
			"check the stream against the wire format (tpsearch gen prints a sample batch)",
		})
	case ExitResourceExhausted:
		p.Error("resource limit exceeded", err.Error(), []string{
			"raise max_table_size in the config file",
			"reduce n or k",
		})
	default:
		p.Error("tpsearch failed", err.Error(), nil)
	}

	return code
}
