package graphio

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// MaxNodes caps the node count a document may declare. NewGraph allocates
// one adjacency list per node up front, so an absurd header would exhaust
// memory before any edge is read.
const MaxNodes = 1 << 24

// Document is the format-neutral description of a graph.
type Document struct {
	Nodes int       `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []EdgeDoc `json:"edges" yaml:"edges" toml:"edges"`
}

// EdgeDoc is one directed weighted edge of a Document.
type EdgeDoc struct {
	From   int     `json:"from" yaml:"from" toml:"from"`
	To     int     `json:"to" yaml:"to" toml:"to"`
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
}

// Graph builds a core.Graph from the document. Edges are added in document
// order; the first rejected edge aborts with its index. A node count above
// MaxNodes is ErrMalformed.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	if d.Nodes > MaxNodes {
		return nil, fmt.Errorf("%w: nodes=%d exceeds limit %d", ErrMalformed, d.Nodes, MaxNodes)
	}
	var gopts []core.GraphOption
	if d.Nodes > 0 {
		// Average out-degree, rounded up.
		gopts = append(gopts, core.WithEdgeCapacity((len(d.Edges)+d.Nodes-1)/d.Nodes))
	}
	g, err := core.NewGraph(d.Nodes, append(gopts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	for i, e := range d.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// FromAdjacency captures every arc of g as a Document.
func FromAdjacency(g core.Adjacency) *Document {
	n := g.Order()
	d := &Document{Nodes: n, Edges: []EdgeDoc{}}
	for v := 0; v < n; v++ {
		for _, a := range g.Arcs(v) {
			d.Edges = append(d.Edges, EdgeDoc{From: v, To: a.To, Weight: a.Weight})
		}
	}

	return d
}
