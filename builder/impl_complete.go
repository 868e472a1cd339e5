// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_complete.go: Complete(n): K_n, n ≥ 1.
//
// Emission: undirected pairs (i,j) i<j lexicographic; directed builds emit
// every ordered pair i≠j, i asc then j asc.
// Complexity: O(n²).

package builder

// Complete returns a Constructor for the complete simple graph on n vertices.
func Complete(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		addRange(b, cfg, 0, n)
		for i := 0; i < n; i++ {
			j := i + 1
			if b.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err := b.addEdge(MethodComplete, cfg.idFn(i), cfg.idFn(j), cfg.weight()); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
