// Package dijkstra implements Dijkstra's shortest-path algorithm on indexed,
// directed graphs with non-negative arc weights.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties on distance pop the lower node ID first, so results are reproducible.
//   - Relaxation uses strict “<”: the first predecessor to reach a node at its final distance is kept.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - Arcs that would push a distance past MaxDistance are never relaxed.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
)

// ShortestPaths computes shortest distances from source to every node of g.
//
// Returns a Table with exactly g.Order() entries. Nodes not reached are
// reported unreachable; that is a result, not an error. A node reached only
// through paths whose length overflows float64 fails the query with
// ErrDistanceOverflow.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. source must be in [0, N) (core.ErrNodeOutOfRange).
//  4. WithTarget, if given, must be in [0, N) (core.ErrNodeOutOfRange).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g core.Adjacency, source int, opts ...Option) (*Table, error) {
	// 1) Validate graph is non-nil
	if core.IsNil(g) {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source and target
	n := g.Order()
	if err := core.CheckNode(source, n); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}
	if cfg.Target != noTarget {
		if err := core.CheckNode(cfg.Target, n); err != nil {
			return nil, fmt.Errorf("dijkstra: target: %w", err)
		}
	}

	// 4) Run
	r := newRunner(g, source, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table(), nil
}

// ShortestPath is a convenience wrapper returning the distance and one
// shortest path from source to target. It returns ErrNoPath when target is
// unreachable.
func ShortestPath(g core.Adjacency, source, target int, opts ...Option) (float64, []int, error) {
	all := append(append([]Option(nil), opts...), WithReturnPath(), WithTarget(target))
	t, err := ShortestPaths(g, source, all...)
	if err != nil {
		return 0, nil, err
	}
	path, err := t.PathTo(target)
	if err != nil {
		return 0, nil, err
	}
	d, _ := t.At(target)

	return d, path, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       core.Adjacency // read-only within the query
	options Options
	source  int
	dist    []float64 // tentative or final distance; +Inf while unvisited
	prev    []int     // predecessor per node; nil unless ReturnPath
	done    []bool    // finalized marker
	over    []bool    // reached only through a sum past MaxFloat64; nil until seen
	pq      nodePQ
	stats   Stats
}

func newRunner(g core.Adjacency, source int, cfg Options) *runner {
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]float64, n),
		done:    make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// init sets every node Unvisited, the source Tentative(0), and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = -1
		}
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	r.push(r.source, 0)
}

// process pops the closest unfinalized node, finalizes it and relaxes its arcs,
// until the heap is empty or the target is finalized.
func (r *runner) process() error {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		r.stats.Pops++

		// Stale entry: the node was finalized through a shorter path earlier.
		if r.done[item.id] {
			r.stats.StalePops++
			continue
		}
		r.done[item.id] = true

		if item.id == r.options.Target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return r.checkOverflow()
}

// checkOverflow fails the query when a node was reached but every path to it
// sums past the float64 range. Such a node is not unreachable, and no finite
// distance describes it.
func (r *runner) checkOverflow() error {
	for v, over := range r.over {
		if over && !r.done[v] {
			return fmt.Errorf("dijkstra: node %d: %w", v, ErrDistanceOverflow)
		}
	}

	return nil
}

// relax examines each arc leaving u and improves tentative distances of
// unfinalized heads. Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	var cand float64
	for _, a := range r.g.Arcs(u) {
		r.stats.ArcsScanned++

		// Adjacency implementations outside core are not validated on insert.
		if a.Weight < 0 || math.IsNaN(a.Weight) {
			return fmt.Errorf("dijkstra: arc %d→%d: %w: %v", u, a.To, core.ErrInvalidWeight, a.Weight)
		}
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if r.done[a.To] {
			continue
		}

		cand = r.dist[u] + a.Weight
		if cand > r.options.MaxDistance {
			continue
		}
		if math.IsInf(cand, 1) {
			// A later finite path may still reach a.To; decided once the heap drains.
			if r.over == nil {
				r.over = make([]bool, len(r.dist))
			}
			r.over[a.To] = true
			continue
		}
		// Unreached heads hold +Inf, so one comparison covers both cases.
		if cand >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = cand
		if r.prev != nil {
			r.prev[a.To] = u
		}
		r.stats.Relaxations++
		r.push(a.To, cand)
	}

	return nil
}

func (r *runner) push(id int, d float64) {
	heap.Push(&r.pq, nodeItem{id: id, dist: d})
	r.stats.Pushes++
}

// table freezes the runner state into the caller-facing result.
// Only finalized nodes are reachable; with WithTarget some reached nodes may
// still be provisional and are reported unreachable.
func (r *runner) table() *Table {
	t := &Table{
		source:  r.source,
		dist:    r.dist,
		reached: r.done,
		prev:    r.prev,
		stats:   r.stats,
	}
	for v, ok := range r.done {
		if !ok {
			t.dist[v] = math.Inf(1)
			if t.prev != nil {
				t.prev[v] = -1
			}
		}
	}

	return t
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by lower node ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
