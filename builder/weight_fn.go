// SPDX-License-Identifier: MIT
// Package builder provides edge-weight generators for graph constructors.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return DefaultEdgeWeight }

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn samples uniformly in [min, max]. With a nil RNG it yields
// DefaultEdgeWeight. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		switch span := max - min; span {
		case 0:
			return min
		case math.MaxInt64:
			// span+1 overflows; Int63 already covers [0, MaxInt64].
			return min + rng.Int63()
		default:
			return min + rng.Int63n(span+1)
		}
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max]; combine with WithSeed.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
