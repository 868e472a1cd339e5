// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_path.go: Path(n): P_n, n ≥ 2.
//
// Emission: keys idFn(0..n-1); edges idFn(i)→idFn(i+1) for i asc.
// Complexity: O(n).

package builder

// Path returns a Constructor for the simple path over n vertices.
func Path(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		addRange(b, cfg, 0, n)
		for i := 0; i+1 < n; i++ {
			if err := b.addEdge(MethodPath, cfg.idFn(i), cfg.idFn(i+1), cfg.weight()); err != nil {
				return err
			}
		}
		return nil
	}
}

// addRange records keys idFn(from..to-1).
func addRange(b *Blueprint, cfg builderConfig, from, to int) {
	for i := from; i < to; i++ {
		b.addVertex(cfg.idFn(i))
	}
}
