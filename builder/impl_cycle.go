// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_cycle.go: Cycle(n): C_n, n ≥ 3.
//
// Emission: Path(n) edges, then the closing edge idFn(n-1)→idFn(0).
// Complexity: O(n).

package builder

// Cycle returns a Constructor for the simple ring over n vertices.
func Cycle(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		addRange(b, cfg, 0, n)
		for i := 0; i < n; i++ {
			if err := b.addEdge(MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight()); err != nil {
				return err
			}
		}
		return nil
	}
}
