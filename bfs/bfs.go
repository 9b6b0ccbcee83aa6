package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const noParent = -1

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Adjacency
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Levels runs breadth-first search on g starting from start, ignoring
// weights, and groups discovered nodes by hop count.
//
// Validation order: ErrGraphNil, ErrOptionViolation, ErrEmptyGraph,
// core.ErrNodeOutOfRange. A hook error or context cancellation aborts the
// traversal and is returned together with the partial Result.
//
// Complexity: O(V + E).
func Levels(g core.Adjacency, start int, opts ...Option) (*Result, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if err := core.CheckNode(start, n); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	// Prepare walker
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = -1
		w.res.Parent[v] = noParent
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, noParent)

	return w.res, w.loop()
}

// enqueue marks v discovered at depth d, records its parent and level,
// calls OnEnqueue, and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	if d == len(w.res.Levels) {
		w.res.Levels = append(w.res.Levels, nil)
	}
	w.res.Levels[d] = append(w.res.Levels[d], v)
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// head in arc insertion order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Arcs(item.v) {
		if w.res.Depth[a.To] >= 0 {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, a.To) {
			continue
		}
		w.enqueue(a.To, next, item.v)
	}
}
