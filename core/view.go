// File: view.go
// Role: Snapshot, the immutable compressed-sparse-row view of a Graph.
// Determinism:
//   - Arcs(v) of a Snapshot equals Arcs(v) of the source Graph at Freeze time.
// Concurrency:
//   - A Snapshot is never mutated after Freeze; any number of goroutines may query it.
// AI-HINT (file):
//   - Freeze copies; later AddEdge calls on the Graph are not visible in the Snapshot.

package core

// Snapshot is a frozen CSR copy of a Graph.
//
// firstOut has length N+1; the arcs of v are arcs[firstOut[v]:firstOut[v+1]].
type Snapshot struct {
	firstOut []int
	arcs     []Arc
}

// Freeze returns an immutable Snapshot of the current contents of g.
// Complexity: O(N + E).
func (g *Graph) Freeze() *Snapshot {
	s := &Snapshot{
		firstOut: make([]int, len(g.adj)+1),
		arcs:     make([]Arc, 0, g.edges),
	}
	for v, list := range g.adj {
		s.firstOut[v] = len(s.arcs)
		s.arcs = append(s.arcs, list...)
	}
	s.firstOut[len(g.adj)] = len(s.arcs)

	return s
}

// Order returns the node count N.
func (s *Snapshot) Order() int { return len(s.firstOut) - 1 }

// Size returns the edge count.
func (s *Snapshot) Size() int { return len(s.arcs) }

// Arcs returns the outgoing arcs of v. The slice is capped at its length so
// an append by the caller can never overwrite the next node's arcs.
func (s *Snapshot) Arcs(v int) []Arc {
	if v < 0 || v >= s.Order() {
		return nil
	}
	lo, hi := s.firstOut[v], s.firstOut[v+1]

	return s.arcs[lo:hi:hi]
}

// Thaw returns a new mutable Graph holding the same edges as s.
func (s *Snapshot) Thaw(opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(s.Order(), opts...)
	if err != nil {
		return nil, err
	}
	for v := 0; v < s.Order(); v++ {
		for _, a := range s.Arcs(v) {
			if err = g.AddEdge(v, a.To, a.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
