// Package lvpath answers single-source shortest-path queries over directed,
// non-negatively weighted multigraphs whose nodes are the integers [0, N).
//
// 🚀 What is in the module?
//
//   - core/     - fixed-size adjacency-list Graph, frozen CSR Snapshot, validation
//   - dijkstra/ - lazy-deletion binary-heap Dijkstra: distance table, routes, early exit
//   - bfs/      - level-order traversal over the same store
//   - builder/  - deterministic fixtures: path, cycle, star, wheel, complete, grid, random
//   - graphio/  - edge-list, JSON, YAML and TOML graph documents
//   - cmd/lvpath - cobra CLI: query, bfs, gen, demo
//
// ✨ Guarantees
//
//   - Rejected input never mutates a graph (size, range, weight, loop checks).
//   - Same graph and source ⇒ identical distances, predecessors and stats.
//   - Unreachable is a flag, never a sentinel distance.
//   - A Snapshot is immutable and safe to query from many goroutines.
//
// Quick example:
//
//	g := core.MustGraph(4)
//	_ = g.AddEdges(
//	    core.Edge{From: 0, To: 1, Weight: 4}, core.Edge{From: 0, To: 2, Weight: 2},
//	    core.Edge{From: 1, To: 3, Weight: 5}, core.Edge{From: 2, To: 3, Weight: 1},
//	)
//	t, _ := dijkstra.ShortestPaths(g, 0) // [0 4 2 3]
//
//	go install github.com/katalvlaran/lvpath/cmd/lvpath@latest
package lvpath
