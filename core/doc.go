// Package core is the graph store of lvpath.
//
// Overview:
//
//   - A Graph owns exactly N adjacency lists, one per node in [0, N).
//   - AddEdge appends a directed arc (to, weight) to the source node's list.
//     Parallel edges are kept; insertion order is preserved.
//   - Weights are float64 and must be finite and non-negative. Integer weights
//     are represented exactly up to 2^53.
//   - There is no edge removal and no weight update.
//
// Validation:
//
//   - NewGraph(n) fails with ErrInvalidSize when n < 0.
//   - AddEdge fails with ErrNodeOutOfRange for an endpoint outside [0, N),
//     with ErrInvalidWeight for a negative/NaN/Inf weight, and with
//     ErrLoopNotAllowed for a self-loop when WithLoops(false) was given.
//   - All checks run before mutation: a failed AddEdge leaves the graph unchanged.
//
// Views:
//
//   - Freeze() builds a Snapshot: an immutable compressed-sparse-row copy.
//   - Both *Graph and *Snapshot implement Adjacency, the interface consumed by
//     the dijkstra and bfs packages.
//
// Thread safety:
//
//   - Graph has no internal locks. Build it on one goroutine, then either stop
//     mutating it or Freeze it and share the Snapshot across goroutines.
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1.5)
//	snap := g.Freeze()
//	_ = snap.Arcs(0) // [{1 4}]
package core
