// Package dijkstra provides single-source shortest paths over lvpath's
// indexed, directed graphs with non-negative arc weights.
//
// Overview:
//
//   - ShortestPaths(g, s) returns a Table with one entry per node: either a
//     finite non-negative distance or "unreachable". Unreachable is a flag,
//     never a numeric sentinel.
//   - A binary min-heap (container/heap) holds the frontier. There is no
//     decrease-key: an improved distance is pushed again, and stale entries are
//     discarded when popped for an already finalized node.
//   - Per node, one query moves through Unvisited → Tentative(d) → Finalized(d).
//     A Tentative distance only decreases; a node is finalized exactly once.
//
// Determinism:
//
//   - Heap ties on distance are broken by the lower node ID.
//   - Arcs are relaxed in insertion order with a strict “<”, so among equal
//     shortest paths the predecessor recorded is the first one discovered.
//   - Running the same query twice on an unmodified graph yields identical tables.
//
// Options:
//
//   - WithReturnPath():           record predecessors; Table.PathTo rebuilds paths.
//   - WithMaxDistance(d):         nodes farther than d are reported unreachable.
//   - WithInfEdgeThreshold(t):    arcs with weight ≥ t are skipped.
//   - WithTarget(v):              stop once v is finalized.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrOptionViolation: an option got an invalid argument (never a panic).
//   - core.ErrNodeOutOfRange: source or target outside [0, N).
//   - core.ErrInvalidWeight:  a custom core.Adjacency yielded a negative or NaN
//     weight. Graphs built with core.Graph can never trigger it.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap holds at most one entry per successful relaxation.
//
// Thread safety:
//
//   - A query only reads its graph. Concurrent queries are safe on a
//     core.Snapshot, or on a core.Graph nobody mutates meanwhile.
//   - A query is synchronous; there is no cancellation.
package dijkstra
