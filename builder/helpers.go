// Package builder provides internal helper functions
// used by Constructor implementations to emit arcs uniformly.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// emit draws one weight and adds u→v, plus v→u when cfg.bidirectional.
// A WeightFn producing an invalid weight surfaces as ErrConstructFailed
// wrapping core.ErrInvalidWeight.
//
// Complexity: O(1) amortized.
func emit(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := core.CheckWeight(w); err != nil {
		return fmt.Errorf("%s: weight for %d→%d: %w: %w", method, u, v, ErrConstructFailed, err)
	}
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if cfg.bidirectional && u != v {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// checkMin rejects n < min with ErrTooFewNodes.
func checkMin(method, name string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, n, min, ErrTooFewNodes)
	}

	return nil
}
