// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes). n = 1 emits nothing.
//   • Emits i→j for every ordered pair with i ≠ j.
//   • WithBidirectional is ignored: every reverse arc is already present.
//
// Complexity:
//   • Time: O(n²) arcs.
//
// Determinism:
//   • Row-major: i asc, then j asc.

package builder

import "github.com/katalvlaran/lvpath/core"

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor emitting all n·(n-1) ordered arcs.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodComplete, "n", n, minCompleteN); err != nil {
			return err
		}
		cfg.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := emit(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
