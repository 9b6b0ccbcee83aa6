// Package bfs provides level-order breadth-first search over a core.Adjacency,
// returning hop-count layers, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, ignoring weights.
//   - Returns a Result containing:
//   - Levels: Levels[d] are the nodes at depth d, in discovery order
//   - Order:  visit sequence
//   - Depth:  hop count per node, -1 if unreached
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached nodes
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a node is discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Arcs are scanned in insertion order and a node is enqueued the first time
//	it is seen, so levels and visit order are fully reproducible.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Levels(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrEmptyGraph, ErrOptionViolation,
//	    // core.ErrNodeOutOfRange, ctx error, or a wrapped OnVisit error
//	}
//	for d, layer := range res.Levels { ... }
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrEmptyGraph       if the graph has no nodes.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrNodeOutOfRange if start is outside [0, N).
//   - Wrapped user-supplied hook errors from OnVisit; the context error on cancel.
package bfs
