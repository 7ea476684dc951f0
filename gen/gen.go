// SPDX-License-Identifier: MIT
// Package gen: constructor plumbing and configuration.
//
// Design:
//   - genConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic; no globals, no hidden RNG.
//   - Build applies options in order (later overrides earlier) and runs
//     the constructor against the resolved config.

package gen

import (
	"math/rand"

	"github.com/verigraph/verigraph/csr"
)

// Constructor builds a validated CSR graph from the resolved configuration.
type Constructor func(cfg genConfig) (*csr.Graph, error)

// Option configures graph generation.
type Option func(*genConfig)

// genConfig aggregates generator knobs. Passed by value to constructors.
type genConfig struct {
	// rng drives stochastic constructors; nil means "no randomness
	// available" and stochastic constructors must reject it.
	rng *rand.Rand
}

// WithRand supplies an explicit random source.
func WithRand(r *rand.Rand) Option {
	return func(cfg *genConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed derives a random source from a fixed seed, the usual route to
// reproducible stochastic fixtures.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// Build resolves options and runs the constructor.
func Build(c Constructor, opts ...Option) (*csr.Graph, error) {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return c(cfg)
}
