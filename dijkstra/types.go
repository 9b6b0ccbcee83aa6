// Package dijkstra defines core types and configuration options
// for single-source shortest paths over a core.Adjacency.
//
// Options:
//
//	– WithReturnPath:       record predecessors so Table.PathTo can rebuild paths.
//	– WithMaxDistance:      nodes farther than the cap are reported unreachable.
//	– WithInfEdgeThreshold: arcs with weight >= threshold are impassable.
//	– WithTarget:           stop as soon as the target node is finalized.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrOptionViolation if an option received an invalid argument.
//	– ErrNoPath          if PathTo is asked for an unreachable node.
//	– ErrNoPredecessors  if PathTo is called on a table built without WithReturnPath.
//	– ErrDistanceOverflow if a node is reachable only by paths summing past MaxFloat64.
//
// A source or target outside [0, N) is reported as core.ErrNodeOutOfRange.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation indicates that an Option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that the requested node was not reached from the source.
	ErrNoPath = errors.New("dijkstra: node is unreachable")

	// ErrNoPredecessors indicates that the table was computed without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: predecessors were not recorded")

	// ErrDistanceOverflow indicates a node whose every path length exceeds the float64 range.
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows float64")
)

// noTarget marks Options.Target as unset.
const noTarget = -1

// Options configures the behavior of ShortestPaths.
//
// ReturnPath       – if true, the Table records one predecessor per reached node.
// MaxDistance      – nodes whose distance exceeds this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – arcs with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Target           – if ≥ 0, the search stops once Target is finalized.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Target           int

	// err records the first invalid option; surfaced by ShortestPaths.
	err error
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a distance cap. Negative or NaN values are recorded
// as ErrOptionViolation and returned by ShortestPaths.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 {
			o.fail(fmt.Errorf("%w: MaxDistance must be non-negative, got %v", ErrOptionViolation, d))
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ t as impassable.
// Zero, negative or NaN thresholds are recorded as ErrOptionViolation.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || t <= 0 {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive, got %v", ErrOptionViolation, t))
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithTarget stops the search once v is finalized. v is range-checked
// against the graph by ShortestPaths.
func WithTarget(v int) Option {
	return func(o *Options) {
		if v < 0 {
			o.fail(fmt.Errorf("%w: Target must be non-negative, got %d", ErrOptionViolation, v))
			return
		}
		o.Target = v
	}
}

// DefaultOptions returns the defaults: no predecessors, no distance cap,
// no impassable arcs, no target.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Target:           noTarget,
	}
}

// fail keeps the first option error only.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Stats counts the work done by one query.
type Stats struct {
	Pushes      int // heap pushes, including the source
	Pops        int // heap pops, including stale ones
	StalePops   int // pops discarded because the node was already finalized
	Relaxations int // successful distance improvements
	ArcsScanned int // arcs examined from finalized nodes
}
