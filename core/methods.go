// File: methods.go
// Role: Read-side queries on Graph: Order/Size/HasNode/Arcs/Neighbors/Edges/OutDegree.
// Determinism:
//   - Edges() returns edges ordered by From asc, then insertion order.
//   - Neighbors()/Arcs() preserve insertion order.

package core

import "fmt"

// Order returns the node count N.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges inserted so far.
func (g *Graph) Size() int { return g.edges }

// Looped reports whether self-loops are accepted by AddEdge.
func (g *Graph) Looped() bool { return g.allowLoops }

// HasNode reports whether v is a valid node identifier.
func (g *Graph) HasNode(v int) bool { return v >= 0 && v < len(g.adj) }

// Arcs returns the outgoing arcs of v without copying.
// The slice must not be modified. Out-of-range v yields nil.
func (g *Graph) Arcs(v int) []Arc {
	if !g.HasNode(v) {
		return nil
	}
	arcs := g.adj[v]

	return arcs[:len(arcs):len(arcs)]
}

// Neighbors returns a copy of v's outgoing arcs in insertion order.
// Returns ErrNodeOutOfRange for an invalid v.
func (g *Graph) Neighbors(v int) ([]Arc, error) {
	if err := g.checkNode(v); err != nil {
		return nil, fmt.Errorf("neighbors of %d: %w", v, err)
	}
	out := make([]Arc, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// OutDegree returns the number of arcs leaving v (0 for an invalid v).
func (g *Graph) OutDegree(v int) int {
	return len(g.Arcs(v))
}

// Edges returns every edge as a fresh slice, ordered by From asc and then
// by insertion order within each source node.
// Complexity: O(N + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for from, arcs := range g.adj {
		for _, a := range arcs {
			out = append(out, Edge{From: from, To: a.To, Weight: a.Weight})
		}
	}

	return out
}
