// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_wheel.go: Wheel(n): W_n = C_{n-1} + hub idFn(n-1), n ≥ 4.
//
// Emission: Cycle(n-1) over idFn(0..n-2), then hub spokes in rim order.
// Directed builds add the rim→hub arc after each spoke.
// Complexity: O(n).

package builder

import "github.com/pkg/errors"

// Wheel returns a Constructor for the wheel graph on n vertices.
func Wheel(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return errors.WithMessagef(err, "%s: base cycle C_%d", MethodWheel, n-1)
		}
		hub := cfg.idFn(n - 1)
		b.addVertex(hub)
		for i := 0; i < n-1; i++ {
			if err := b.addArc(MethodWheel, hub, cfg.idFn(i), cfg.weight()); err != nil {
				return err
			}
		}
		return nil
	}
}
