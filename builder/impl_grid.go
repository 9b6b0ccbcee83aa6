// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal lattice; cell (r,c) is node r*cols+c (row-major).
//   • Each cell emits Right (r,c+1) and Down (r+1,c) where they exist.
//     WithBidirectional makes the lattice walkable both ways.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • rows*cols must not exceed g.Order() (else core.ErrNodeOutOfRange).
//
// Complexity:
//   • Time: O(rows*cols).
//
// Determinism:
//   • Stable arc order: for each (r,c) in row-major order emit Right then Down.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridNode maps lattice coordinates to the node id used by Grid.
func GridNode(r, c, cols int) int {
	return r*cols + c
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		// 2) Right then Down for every cell, row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridNode(r, c, cols)
				if c+1 < cols {
					if err := emit(g, cfg, methodGrid, u, GridNode(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(g, cfg, methodGrid, u, GridNode(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
