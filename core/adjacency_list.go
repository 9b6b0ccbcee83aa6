// File: adjacency_list.go
// Role: Edge insertion and validation for Graph.
// Determinism:
//   - Arcs are appended, so per-node order is insertion order.
// AI-HINT (file):
//   - Every check runs before the append; a failed AddEdge never mutates the graph.
//   - Weights must be finite and >= 0; nothing is clamped.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends the directed arc from→to with the given weight.
//
// Steps:
//  1. Validate both endpoints against [0, N).
//  2. Validate the weight (finite, non-negative).
//  3. Reject self-loops when loops are disabled.
//  4. Append (to, weight) to from's list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	// 1) Endpoints
	if err := g.checkNode(from); err != nil {
		return fmt.Errorf("add edge %d→%d: %w", from, to, err)
	}
	if err := g.checkNode(to); err != nil {
		return fmt.Errorf("add edge %d→%d: %w", from, to, err)
	}

	// 2) Weight
	if err := CheckWeight(weight); err != nil {
		return fmt.Errorf("add edge %d→%d: %w", from, to, err)
	}

	// 3) Loops
	if from == to && !g.allowLoops {
		return fmt.Errorf("add edge %d→%d: %w", from, to, ErrLoopNotAllowed)
	}

	// 4) Mutate
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})
	g.edges++

	return nil
}

// AddEdges inserts edges in order and stops at the first failure.
// Edges before the failing one stay inserted; the failing edge does not.
func (g *Graph) AddEdges(edges ...Edge) error {
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return nil
}

// CheckWeight reports ErrInvalidWeight for negative, NaN or infinite weights.
func CheckWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}

	return nil
}

// CheckNode reports ErrNodeOutOfRange unless 0 <= v < n.
func CheckNode(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, v, n)
	}

	return nil
}

func (g *Graph) checkNode(v int) error {
	return CheckNode(v, len(g.adj))
}
