// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Path emits i→i+1 for i=0..n-2; Cycle additionally closes (n-1)→0.
//   • n must not exceed g.Order() (else core.ErrNodeOutOfRange from AddEdge).
//
// Determinism:
//   • Arcs emitted in ascending i; weights drawn in the same order.

package builder

import "github.com/katalvlaran/lvpath/core"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	minChainLen = 2
)

// Path returns a Constructor that chains nodes 0→1→…→(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that chains nodes 0→1→…→(n-1)→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := checkMin(method, "n", n, minChainLen); err != nil {
		return err
	}
	for i := 0; i < n-1; i++ {
		if err := emit(g, cfg, method, i, i+1); err != nil {
			return err
		}
	}
	if closed {
		return emit(g, cfg, method, n-1, 0)
	}

	return nil
}
