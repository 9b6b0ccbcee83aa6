// File: methods_clone.go
// Role: Deep copy of a Graph.

package core

// Clone returns an independent deep copy of g: same order, same options,
// same arcs in the same order. Mutating one never affects the other.
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		allowLoops: g.allowLoops,
		capHint:    g.capHint,
		adj:        make([][]Arc, len(g.adj)),
		edges:      g.edges,
	}
	for v, arcs := range g.adj {
		if len(arcs) == 0 && g.capHint == 0 {
			continue
		}
		out.adj[v] = make([]Arc, len(arcs), max(len(arcs), g.capHint))
		copy(out.adj[v], arcs)
	}

	return out
}
