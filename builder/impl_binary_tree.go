// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// impl_binary_tree.go: BinaryTree(depth): perfect binary tree, depth ≥ 1.
//
// Layout: heap order, root idFn(0), children of i are 2i+1 and 2i+2;
// 2^(depth+1)-1 vertices. Emission: parent→left, parent→right, parent asc.
// Complexity: O(2^depth).

package builder

import "github.com/pkg/errors"

// maxTreeDepth bounds the vertex count of BinaryTree.
const maxTreeDepth = 24

// BinaryTree returns a Constructor for the perfect binary tree of the given depth.
func BinaryTree(depth int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodBinaryTree, "depth", depth, MinTreeDepth); err != nil {
			return err
		}
		if depth > maxTreeDepth {
			return errors.Wrapf(ErrConstructFailed, "%s: depth=%d > max=%d", MethodBinaryTree, depth, maxTreeDepth)
		}
		n := 1<<(depth+1) - 1
		addRange(b, cfg, 0, n)
		for parent := 0; 2*parent+2 < n; parent++ {
			for _, child := range [2]int{2*parent + 1, 2*parent + 2} {
				if err := b.addEdge(MethodBinaryTree, cfg.idFn(parent), cfg.idFn(child), cfg.weight()); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
