package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transversal/internal/config"
)

// loadConfig applies defaults, then the config file, then flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	cfg := config.Defaults()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitInvalidInput, "failed to load config", err)
		}
		cfg = *loaded
	}

	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = opts.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitInvalidInput, "invalid configuration", err)
	}

	return &cfg, nil
}

// newLogger builds the slog logger described by cfg, writing to w.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level() // validated by loadConfig
	hopts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}

	return slog.New(handler)
}
