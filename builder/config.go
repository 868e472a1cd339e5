// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn     = DefaultIDFn   (index is the key)
//   • rng      = nil           (no randomness unless seeded)
//   • weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors never modify it.
type builderConfig struct {
	idFn     IDFn       // index → key
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // per-edge weight
}

// newBuilderConfig applies opts in order over the defaults (later wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
