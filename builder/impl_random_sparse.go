// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   • An RNG is required for 0 < p < 1 (ErrNeedRandSource).
//   • Undirected: unordered pairs i<j; directed: ordered pairs i≠j. No loops.
//
// Determinism: trials in i asc, j asc order; one weight draw per kept edge.
// Complexity: O(n²) trials.

package builder

import "github.com/pkg/errors"

// RandomSparse returns a Constructor sampling each admissible edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomSparse)
		}

		keep := func() bool {
			switch {
			case p == MaxProbability:
				return true
			case p == MinProbability:
				return false
			default:
				return cfg.rng.Float64() < p
			}
		}

		addRange(b, cfg, 0, n)
		for i := 0; i < n; i++ {
			j := i + 1
			if b.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := b.addEdge(MethodRandomSparse, cfg.idFn(i), cfg.idFn(j), cfg.weight()); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
