// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble fixtures deterministically.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, random weights).
//   - A constructor sized for more nodes than the graph holds fails with core.ErrNodeOutOfRange.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit arcs in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n nodes and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with the context "BuildGraph: %w"
// and returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - core.ErrInvalidSize for n < 0.
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewNodes, ErrInvalidProbability, ...).
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is the single-constructor shorthand of BuildGraph with default graph options.
func Build(n int, c Constructor, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, nil, opts, c)
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Node i of a topology is node i of the graph. Arcs follow the orientation
// documented per constructor; WithBidirectional adds the reverse arc right
// after each forward arc, with the same weight.

// Path builds 0→1→…→(n-1) (n ≥ 2).
// Complexity: O(n).
//func Path(n int) Constructor

// Cycle builds 0→1→…→(n-1)→0 (n ≥ 2).
// Complexity: O(n).
//func Cycle(n int) Constructor

// Star builds 0→i for i=1..n-1 (n ≥ 2).
// Complexity: O(n).
//func Star(n int) Constructor

// Wheel builds a Star(n) plus the rim cycle 1→2→…→(n-1)→1 (n ≥ 4).
// Complexity: O(n).
//func Wheel(n int) Constructor

// Complete builds every ordered pair i→j, i≠j (n ≥ 1).
// Complexity: O(n²).
//func Complete(n int) Constructor

// Grid builds a rows×cols lattice, node r*cols+c, with Right and Down arcs.
// Complexity: O(rows*cols).
//func Grid(rows, cols int) Constructor

// RandomSparse includes each ordered pair (i,j) independently with probability p.
// Complexity: O(n²) Bernoulli trials.
//func RandomSparse(n int, p float64) Constructor
