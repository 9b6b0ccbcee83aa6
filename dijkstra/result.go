package dijkstra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// Distance is one entry of a Table. Value is meaningful only when Reachable.
type Distance struct {
	Value     float64
	Reachable bool
}

// String renders the distance, or "unreachable".
func (d Distance) String() string {
	if !d.Reachable {
		return "unreachable"
	}

	return strconv.FormatFloat(d.Value, 'g', -1, 64)
}

// Table is the immutable outcome of one ShortestPaths query, index-aligned
// with node identifiers.
type Table struct {
	source  int
	dist    []float64
	reached []bool
	prev    []int // nil unless WithReturnPath
	stats   Stats
}

// Source returns the node the query started from.
func (t *Table) Source() int { return t.source }

// Len returns the number of nodes covered by the table.
func (t *Table) Len() int { return len(t.dist) }

// At returns the distance to v and whether v was reached.
// An out-of-range v reports (0, false).
func (t *Table) At(v int) (float64, bool) {
	if v < 0 || v >= len(t.dist) || !t.reached[v] {
		return 0, false
	}

	return t.dist[v], true
}

// Reachable reports whether v was reached from the source.
func (t *Table) Reachable(v int) bool {
	_, ok := t.At(v)
	return ok
}

// Distances returns a fresh slice with one Distance per node.
func (t *Table) Distances() []Distance {
	out := make([]Distance, len(t.dist))
	for v := range t.dist {
		if t.reached[v] {
			out[v] = Distance{Value: t.dist[v], Reachable: true}
		}
	}

	return out
}

// Predecessor returns the node preceding v on the recorded shortest path.
// ok is false for the source, for unreached nodes, and when the table was
// computed without WithReturnPath.
func (t *Table) Predecessor(v int) (int, bool) {
	if t.prev == nil || v < 0 || v >= len(t.prev) || t.prev[v] < 0 {
		return -1, false
	}

	return t.prev[v], true
}

// PathTo rebuilds the node sequence source → … → v.
//
// Errors:
//   - ErrNoPredecessors if the query ran without WithReturnPath.
//   - core.ErrNodeOutOfRange if v is not a node.
//   - ErrNoPath if v was not reached.
func (t *Table) PathTo(v int) ([]int, error) {
	if t.prev == nil {
		return nil, ErrNoPredecessors
	}
	if err := core.CheckNode(v, len(t.dist)); err != nil {
		return nil, fmt.Errorf("dijkstra: path: %w", err)
	}
	if !t.reached[v] {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, v, t.source)
	}

	// Walk predecessors back to the source, then reverse in place.
	path := []int{v}
	for cur := v; cur != t.source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Stats returns the work counters of the query.
func (t *Table) Stats() Stats { return t.stats }

// String renders the table as "[0 4 2 unreachable]".
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for v, d := range t.Distances() {
		if v > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
