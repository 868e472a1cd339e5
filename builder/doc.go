// SPDX-License-Identifier: MIT

// Package builder assembles deterministic topology fixtures as core graphs.
//
// Constructors (Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
// BinaryTree, Grid, RandomSparse) describe vertices and weighted edges on a
// Blueprint. BuildDirected / BuildUndirected then load the blueprint into a
// persistent core graph with a single bulk call, keyed by int and weighted
// by int64.
//
// Configuration:
//   - BuilderOption:       functional option resolved into builderConfig.
//   - IDFn:                index → key (DefaultIDFn, OffsetIDFn; WithIDOffset).
//   - WeightFn:            per-edge weight (ConstantWeightFn, UniformWeightFn).
//   - WithSeed / WithRand: randomness for RandomSparse and random weights.
//
// Guarantees:
//   - Same constructors, options and seed ⇒ identical graphs.
//   - Constructors compose: shared keys are merged, repeated edges collapse to
//     the first emission (in undirected builds, either orientation).
//   - Validation failures return the sentinels in errors.go; option
//     constructors panic on meaningless input.
//   - Core policies given as gopts (WithLoopsForbidden, WithCyclesForbidden)
//     are enforced during the bulk load and surface as core.GraphError.
package builder
