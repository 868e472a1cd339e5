// SPDX-License-Identifier: MIT
// Package builder_test verifies the edge-weight generators, covering both
// correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphific/builder"
)

func TestDefaultWeightFn(t *testing.T) {
	t.Parallel()
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rand.New(rand.NewSource(1))))
}

func TestConstantWeightFn(t *testing.T) {
	t.Parallel()
	fn := builder.ConstantWeightFn(7)
	assert.Equal(t, int64(7), fn(nil))
	assert.Equal(t, int64(7), fn(rand.New(rand.NewSource(2))))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.UniformWeightFn(-1, 3) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })

	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(10, 20)(nil))

	rng := rand.New(rand.NewSource(99))
	fn := builder.UniformWeightFn(1, 3)
	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		w := fn(rng)
		assert.True(t, w >= 1 && w <= 3, "weight %d out of range", w)
		seen[w] = true
	}
	assert.Len(t, seen, 3, "both bounds are reachable")
}

func TestUniformWeightFn_FullRange(t *testing.T) {
	t.Parallel()

	fn := builder.UniformWeightFn(0, math.MaxInt64)
	rng := rand.New(rand.NewSource(5))
	assert.NotPanics(t, func() {
		for i := 0; i < 100; i++ {
			assert.GreaterOrEqual(t, fn(rng), int64(0))
		}
	})

	g, err := builder.BuildDirected[struct{}](nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(0, math.MaxInt64)},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}
