// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; hub 0 emits 0→i for i=1..n-1.
//   • Wheel: n ≥ 4; Star(n) spokes, then rim 1→2→…→(n-1)→1.
//
// Determinism:
//   • Spokes first (i asc), then rim (i asc).

package builder

import "github.com/katalvlaran/lvpath/core"

const (
	methodStar  = "Star"
	methodWheel = "Wheel"
	minStarN    = 2
	minWheelN   = 4
	hubNode     = 0
)

// Star returns a Constructor with hub 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodStar, "n", n, minStarN); err != nil {
			return err
		}

		return spokes(g, cfg, methodStar, n)
	}
}

// Wheel returns a Constructor with hub 0, spokes to 1..n-1 and a rim cycle
// over 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodWheel, "n", n, minWheelN); err != nil {
			return err
		}
		if err := spokes(g, cfg, methodWheel, n); err != nil {
			return err
		}
		for i := 1; i < n-1; i++ {
			if err := emit(g, cfg, methodWheel, i, i+1); err != nil {
				return err
			}
		}

		return emit(g, cfg, methodWheel, n-1, 1)
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 1; i < n; i++ {
		if err := emit(g, cfg, method, hubNode, i); err != nil {
			return err
		}
	}

	return nil
}
