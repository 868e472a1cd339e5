// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_grid.go: Grid(rows, cols): 4-neighborhood lattice, rows,cols ≥ 1.
//
// Keys: idFn(r*cols + c), row-major.
// Emission: per cell, Right then Bottom neighbor; directed builds mirror each arc.
// Complexity: O(rows·cols).

package builder

import "github.com/pkg/errors"

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				MethodGrid, rows, cols, MinGridDim)
		}
		addRange(b, cfg, 0, rows*cols)
		cell := func(r, c int) int { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := b.addArc(MethodGrid, cell(r, c), cell(r, c+1), cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := b.addArc(MethodGrid, cell(r, c), cell(r+1, c), cfg.weight()); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
