package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transversal/combin"
)

// Config holds the tunables of a tpsearch run. Every field may come from a
// YAML file; command-line flags override the file.
type Config struct {
	LogLevel      string `yaml:"log_level"`      // debug, info, warn or error
	LogFormat     string `yaml:"log_format"`     // text or json
	Witness       bool   `yaml:"witness"`        // log the counter-partition of a failing seed
	ParallelDepth int    `yaml:"parallel_depth"` // 0 = sequential search
	CheckOrbit    bool   `yaml:"check_orbit"`    // validate the orbit contract before searching
	MaxTableSize  int    `yaml:"max_table_size"` // upper bound on C(n, k-1)
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Witness:       false,
		ParallelDepth: 0,
		CheckOrbit:    false,
		MaxTableSize:  combin.DefaultMaxTableSize,
	}
}

// Validate rejects unknown levels and formats and out-of-range numbers.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be 'text' or 'json', got '%s'", c.LogFormat)
	}
	if c.ParallelDepth < 0 {
		return fmt.Errorf("parallel_depth must be >= 0, got %d", c.ParallelDepth)
	}
	if c.MaxTableSize <= 0 {
		return fmt.Errorf("max_table_size must be > 0, got %d", c.MaxTableSize)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level must be debug, info, warn or error, got '%s'", c.LogLevel)
	}
	return lvl, nil
}

// Load reads path over Defaults and validates the result. Keys the file
// does not set keep their default; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
