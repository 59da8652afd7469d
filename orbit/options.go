// SPDX-License-Identifier: MIT
// Package: transversal/orbit
//
// options.go — functional options for the fixture constructors.

package orbit

import "github.com/katalvlaran/transversal/combin"

// BuildOption customizes Complete, Cyclic and FromFamily.
type BuildOption func(*buildConfig)

type buildConfig struct {
	cache *combin.Cache
}

// WithCache makes constructors take their subset tables from c, so several
// descriptors over the same (n, k) share one table. Panics on nil.
func WithCache(c *combin.Cache) BuildOption {
	if c == nil {
		panic("orbit: WithCache(nil)")
	}
	return func(cfg *buildConfig) {
		cfg.cache = c
	}
}

func newBuildConfig(opts ...BuildOption) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = combin.NewCache()
	}

	return cfg
}
