// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_star.go: Star(n): center idFn(0) plus n-1 leaves, n ≥ 2.
//
// Emission: center→leaf for leaf idx 1..n-1 asc (one arc per leaf, also when directed).
// Complexity: O(n).

package builder

// Star returns a Constructor for a star whose center is the first key.
func Star(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		addRange(b, cfg, 0, n)
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := b.addEdge(MethodStar, center, cfg.idFn(i), cfg.weight()); err != nil {
				return err
			}
		}
		return nil
	}
}
