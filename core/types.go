// Package core defines the indexed Graph store, its Arc and Edge types,
// the read-only Snapshot view, and the sentinel errors shared by every
// algorithm package in lvpath.
//
// Nodes are the integers [0, N) where N is fixed at construction time.
// Edges are directed, weighted with finite non-negative float64 values,
// and stored per source node in insertion order. Parallel edges are kept.
//
// This file declares Arc, Edge, Adjacency, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidSize     - node count is negative.
//	ErrNodeOutOfRange  - a node identifier is outside [0, N).
//	ErrInvalidWeight   - edge weight is negative, NaN or infinite.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates that a graph was requested with a negative node count.
	ErrInvalidSize = errors.New("core: invalid node count")

	// ErrNodeOutOfRange indicates an edge endpoint or query node outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Arc is one entry of a node's outgoing list: the head node and the edge weight.
type Arc struct {
	// To is the destination node.
	To int

	// Weight is the non-negative cost of traversing the arc.
	Weight float64
}

// Edge is a fully qualified directed edge (From → To, Weight).
type Edge struct {
	From   int
	To     int
	Weight float64
}

// String renders the edge as "from→to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%g)", e.From, e.To, e.Weight)
}

// Adjacency is the read-only view consumed by the algorithm packages.
// Both *Graph and *Snapshot implement it.
//
// Arcs returns the outgoing arcs of v in insertion order. The returned slice
// belongs to the implementation and must not be modified. For v outside
// [0, Order()) it returns nil.
type Adjacency interface {
	Order() int
	Arcs(v int) []Arc
}

// IsNil reports whether a is a nil interface or a typed nil *Graph / *Snapshot.
func IsNil(a Adjacency) bool {
	switch g := a.(type) {
	case nil:
		return true
	case *Graph:
		return g == nil
	case *Snapshot:
		return g == nil
	}

	return false
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits (true) or rejects (false) self-loops. Loops are permitted by default.
func WithLoops(allow bool) GraphOption {
	return func(g *Graph) { g.allowLoops = allow }
}

// WithEdgeCapacity pre-sizes every per-node list to hold hint arcs.
// Non-positive hints are ignored.
func WithEdgeCapacity(hint int) GraphOption {
	return func(g *Graph) {
		if hint > 0 {
			g.capHint = hint
		}
	}
}

// Graph is the mutable adjacency-list store.
//
// Invariant: len(adj) == N for the whole lifetime of the Graph; adj[v] holds
// the outgoing arcs of v in insertion order.
//
// Graph performs no internal locking. Mutating it while a query runs is a
// caller error; use Freeze to hand out an immutable Snapshot instead.
type Graph struct {
	allowLoops bool
	capHint    int

	adj   [][]Arc // adj[from] = outgoing arcs in insertion order
	edges int     // total arc count
}

// NewGraph creates a Graph with n nodes and no edges.
// n == 0 yields a valid empty graph; n < 0 returns ErrInvalidSize.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	g := &Graph{allowLoops: true}
	for _, opt := range opts {
		opt(g)
	}

	g.adj = make([][]Arc, n)
	if g.capHint > 0 {
		for v := range g.adj {
			g.adj[v] = make([]Arc, 0, g.capHint)
		}
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error. Intended for fixtures and examples.
func MustGraph(n int, opts ...GraphOption) *Graph {
	g, err := NewGraph(n, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
