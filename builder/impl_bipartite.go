// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_bipartite.go: CompleteBipartite(n1, n2): K_{n1,n2}, n1,n2 ≥ 1.
//
// Emission: left keys idFn(0..n1-1), right keys idFn(n1..n1+n2-1);
// edges left→right, left asc then right asc (one arc per pair).
// Complexity: O(n1·n2).

package builder

import "github.com/pkg/errors"

// CompleteBipartite returns a Constructor for the complete bipartite graph.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return errors.Wrapf(ErrTooFewVertices, "%s: n1=%d, n2=%d (each must be ≥ %d)",
				MethodCompleteBipartite, n1, n2, MinPartitionSize)
		}
		addRange(b, cfg, 0, n1+n2)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := b.addEdge(MethodCompleteBipartite, cfg.idFn(i), cfg.idFn(j), cfg.weight()); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
