package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// buildRoadNetwork returns the 6-node reference network:
//
//	0→1(4) 0→2(2) 1→3(5) 2→3(1) 1→4(10) 3→4(2) 3→5(3) 2→5(8) 4→5(6)
//
// Shortest distances from 0 are [0 4 2 3 5 6].
func buildRoadNetwork() *core.Graph {
	g := core.MustGraph(6)
	_ = g.AddEdges(
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 0, To: 2, Weight: 2},
		core.Edge{From: 1, To: 3, Weight: 5},
		core.Edge{From: 2, To: 3, Weight: 1},
		core.Edge{From: 1, To: 4, Weight: 10},
		core.Edge{From: 3, To: 4, Weight: 2},
		core.Edge{From: 3, To: 5, Weight: 3},
		core.Edge{From: 2, To: 5, Weight: 8},
		core.Edge{From: 4, To: 5, Weight: 6},
	)

	return g
}

// reached is shorthand for a reachable Distance.
func reached(v float64) dijkstra.Distance { return dijkstra.Distance{Value: v, Reachable: true} }

// unreachable is the zero Distance.
var unreachable = dijkstra.Distance{}

// ShortestPathsSuite exercises ShortestPaths on the reference network and small fixtures.
type ShortestPathsSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *ShortestPathsSuite) SetupTest() {
	s.g = buildRoadNetwork()
}

// TestReferenceNetwork checks the distances of the reference network.
func (s *ShortestPathsSuite) TestReferenceNetwork() {
	t, err := dijkstra.ShortestPaths(s.g, 0)
	s.Require().NoError(err)
	s.Equal(6, t.Len())
	s.Equal(0, t.Source())
	s.Equal([]dijkstra.Distance{
		reached(0), reached(4), reached(2), reached(3), reached(5), reached(6),
	}, t.Distances())
	s.Equal("[0 4 2 3 5 6]", t.String())
}

// TestReferenceNetworkPaths checks predecessor links and rebuilt paths.
func (s *ShortestPathsSuite) TestReferenceNetworkPaths() {
	t, err := dijkstra.ShortestPaths(s.g, 0, dijkstra.WithReturnPath())
	s.Require().NoError(err)

	want := map[int][]int{
		0: {0},
		1: {0, 1},
		2: {0, 2},
		3: {0, 2, 3},
		4: {0, 2, 3, 4},
		5: {0, 2, 3, 5},
	}
	for v, p := range want {
		got, err := t.PathTo(v)
		s.Require().NoError(err)
		s.Equal(p, got, "path to %d", v)
	}

	_, ok := t.Predecessor(0)
	s.False(ok, "source has no predecessor")
	p, ok := t.Predecessor(5)
	s.True(ok)
	s.Equal(3, p)
}

// TestStats checks the work counters for the reference network.
// The 5 entry pushed via 2→5 (10) goes stale once 3→5 improves it to 6.
func (s *ShortestPathsSuite) TestStats() {
	t, err := dijkstra.ShortestPaths(s.g, 0)
	s.Require().NoError(err)
	s.Equal(dijkstra.Stats{
		Pushes:      7,
		Pops:        7,
		StalePops:   1,
		Relaxations: 6,
		ArcsScanned: 9,
	}, t.Stats())
}

// TestIdempotent runs the same query twice.
func (s *ShortestPathsSuite) TestIdempotent() {
	a, err := dijkstra.ShortestPaths(s.g, 1, dijkstra.WithReturnPath())
	s.Require().NoError(err)
	b, err := dijkstra.ShortestPaths(s.g, 1, dijkstra.WithReturnPath())
	s.Require().NoError(err)
	s.Equal(a, b)
}

// TestFromMiddle: nodes upstream of the source are unreachable.
func (s *ShortestPathsSuite) TestFromMiddle() {
	t, err := dijkstra.ShortestPaths(s.g, 3)
	s.Require().NoError(err)
	s.Equal([]dijkstra.Distance{
		unreachable, unreachable, unreachable, reached(0), reached(2), reached(3),
	}, t.Distances())
	s.Equal("[unreachable unreachable unreachable 0 2 3]", t.String())
	s.False(t.Reachable(0))
	s.True(t.Reachable(5))
}

// TestSnapshotMatchesGraph compares a frozen snapshot against the live graph.
func (s *ShortestPathsSuite) TestSnapshotMatchesGraph() {
	snap := s.g.Freeze()
	for src := 0; src < s.g.Order(); src++ {
		a, err := dijkstra.ShortestPaths(s.g, src, dijkstra.WithReturnPath())
		s.Require().NoError(err)
		b, err := dijkstra.ShortestPaths(snap, src, dijkstra.WithReturnPath())
		s.Require().NoError(err)
		s.Equal(a, b, "source %d", src)
	}
}

// TestMaxDistance: nodes beyond the cap are unreachable.
func (s *ShortestPathsSuite) TestMaxDistance() {
	t, err := dijkstra.ShortestPaths(s.g, 0, dijkstra.WithMaxDistance(4))
	s.Require().NoError(err)
	s.Equal([]dijkstra.Distance{
		reached(0), reached(4), reached(2), reached(3), unreachable, unreachable,
	}, t.Distances())
}

// TestInfEdgeThreshold: only arcs lighter than 3 remain (0→2, 2→3, 3→4).
func (s *ShortestPathsSuite) TestInfEdgeThreshold() {
	t, err := dijkstra.ShortestPaths(s.g, 0, dijkstra.WithInfEdgeThreshold(3))
	s.Require().NoError(err)
	s.Equal([]dijkstra.Distance{
		reached(0), unreachable, reached(2), reached(3), reached(5), unreachable,
	}, t.Distances())
}

// TestTargetStopsEarly: after 2 is finalized only 0 and 2 are final.
func (s *ShortestPathsSuite) TestTargetStopsEarly() {
	t, err := dijkstra.ShortestPaths(s.g, 0, dijkstra.WithTarget(2), dijkstra.WithReturnPath())
	s.Require().NoError(err)
	s.Equal([]dijkstra.Distance{
		reached(0), unreachable, reached(2), unreachable, unreachable, unreachable,
	}, t.Distances())

	path, err := t.PathTo(2)
	s.Require().NoError(err)
	s.Equal([]int{0, 2}, path)

	_, err = t.PathTo(1)
	s.ErrorIs(err, dijkstra.ErrNoPath)
}

// TestShortestPath uses the single-pair helper.
func (s *ShortestPathsSuite) TestShortestPath() {
	d, path, err := dijkstra.ShortestPath(s.g, 0, 5)
	s.Require().NoError(err)
	s.Equal(6.0, d)
	s.Equal([]int{0, 2, 3, 5}, path)

	_, _, err = dijkstra.ShortestPath(s.g, 5, 0)
	s.ErrorIs(err, dijkstra.ErrNoPath)

	d, path, err = dijkstra.ShortestPath(s.g, 4, 4)
	s.Require().NoError(err)
	s.Equal(0.0, d)
	s.Equal([]int{4}, path)
}

// TestPathToErrors covers every PathTo failure.
func (s *ShortestPathsSuite) TestPathToErrors() {
	t, err := dijkstra.ShortestPaths(s.g, 0)
	s.Require().NoError(err)
	_, err = t.PathTo(3)
	s.ErrorIs(err, dijkstra.ErrNoPredecessors)

	t, err = dijkstra.ShortestPaths(s.g, 3, dijkstra.WithReturnPath())
	s.Require().NoError(err)
	_, err = t.PathTo(0)
	s.ErrorIs(err, dijkstra.ErrNoPath)
	_, err = t.PathTo(6)
	s.ErrorIs(err, core.ErrNodeOutOfRange)
	_, err = t.PathTo(-1)
	s.ErrorIs(err, core.ErrNodeOutOfRange)
}

// TestAtOutOfRange: At never panics.
func (s *ShortestPathsSuite) TestAtOutOfRange() {
	t, err := dijkstra.ShortestPaths(s.g, 0)
	s.Require().NoError(err)
	_, ok := t.At(-1)
	s.False(ok)
	_, ok = t.At(6)
	s.False(ok)
	d, ok := t.At(4)
	s.True(ok)
	s.Equal(5.0, d)
}

func TestShortestPathsSuite(t *testing.T) {
	suite.Run(t, new(ShortestPathsSuite))
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	var g *core.Graph
	_, err = dijkstra.ShortestPaths(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	var s *core.Snapshot
	_, err = dijkstra.ShortestPaths(s, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	g := buildRoadNetwork()
	for _, src := range []int{-1, 6, 100} {
		tbl, err := dijkstra.ShortestPaths(g, src)
		require.ErrorIs(t, err, core.ErrNodeOutOfRange, "source %d", src)
		require.Nil(t, tbl)
	}

	_, err := dijkstra.ShortestPaths(core.MustGraph(0), 0)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestShortestPaths_OptionViolations(t *testing.T) {
	g := buildRoadNetwork()
	cases := map[string]dijkstra.Option{
		"negative max distance": dijkstra.WithMaxDistance(-1),
		"zero threshold":        dijkstra.WithInfEdgeThreshold(0),
		"negative threshold":    dijkstra.WithInfEdgeThreshold(-3),
		"negative target":       dijkstra.WithTarget(-2),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dijkstra.ShortestPaths(g, 0, opt)
			require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
		})
	}

	_, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithTarget(6))
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

// negativeArcs is an Adjacency that bypasses core validation.
type negativeArcs struct{}

func (negativeArcs) Order() int { return 2 }
func (negativeArcs) Arcs(v int) []core.Arc {
	if v == 0 {
		return []core.Arc{{To: 1, Weight: -1}}
	}
	return nil
}

func TestShortestPaths_ForeignAdjacencyNegativeWeight(t *testing.T) {
	_, err := dijkstra.ShortestPaths(negativeArcs{}, 0)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestShortestPaths_DistanceOverflow(t *testing.T) {
	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, math.MaxFloat64))
	require.NoError(t, g.AddEdge(1, 2, math.MaxFloat64))

	_, err := dijkstra.ShortestPaths(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)
	require.Contains(t, err.Error(), "node 2")

	// Under a finite cap the overflowing path is simply out of range.
	tbl, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(1e300))
	require.NoError(t, err)
	require.Equal(t, []dijkstra.Distance{reached(0), unreachable, unreachable}, tbl.Distances())

	// Early exit at a node settled before the overflow is seen.
	tbl, err = dijkstra.ShortestPaths(g, 0, dijkstra.WithTarget(1))
	require.NoError(t, err)
	require.True(t, tbl.Reachable(1))
}

func TestShortestPaths_OverflowResolvedByFinitePath(t *testing.T) {
	// 1 is settled first and overflows into 2; 3 later reaches 2 finitely.
	g := core.MustGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1e308))
	require.NoError(t, g.AddEdge(0, 3, 1.5e308))
	require.NoError(t, g.AddEdge(1, 2, math.MaxFloat64))
	require.NoError(t, g.AddEdge(3, 2, 1e307))

	tbl, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	d, ok := tbl.At(2)
	require.True(t, ok)
	require.InEpsilon(t, 1.6e308, d, 1e-12)
	path, err := tbl.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2}, path)
}

// ------------------------------------------------------------------------
// Small fixtures
// ------------------------------------------------------------------------

func TestShortestPaths_SingleNode(t *testing.T) {
	tbl, err := dijkstra.ShortestPaths(core.MustGraph(1), 0)
	require.NoError(t, err)
	require.Equal(t, []dijkstra.Distance{reached(0)}, tbl.Distances())
}

func TestShortestPaths_ParallelEdges(t *testing.T) {
	g := core.MustGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 1, 9))

	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, []dijkstra.Distance{reached(0), reached(2)}, tbl.Distances())
}

func TestShortestPaths_SelfLoopIgnored(t *testing.T) {
	g := core.MustGraph(2)
	require.NoError(t, g.AddEdge(0, 0, 3))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 1, 0))

	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, []dijkstra.Distance{reached(0), reached(1)}, tbl.Distances())
}

func TestShortestPaths_ZeroWeights(t *testing.T) {
	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, "[0 0 0]", tbl.String())
}

func TestShortestPaths_FractionalWeights(t *testing.T) {
	g := core.MustGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 0.5))
	require.NoError(t, g.AddEdge(1, 2, 0.25))
	require.NoError(t, g.AddEdge(0, 2, 1))

	d, path, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.75, d)
	require.Equal(t, []int{0, 1, 2}, path)
}

func TestShortestPaths_DirectedOnly(t *testing.T) {
	g := core.MustGraph(2)
	require.NoError(t, g.AddEdge(1, 0, 1))

	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, []dijkstra.Distance{reached(0), unreachable}, tbl.Distances())
}

// TestShortestPaths_TieBreakLowerID: with two equal routes to 3, node 1 is
// popped before node 2 regardless of insertion order, so 3's predecessor is 1.
func TestShortestPaths_TieBreakLowerID(t *testing.T) {
	for _, order := range [][]core.Edge{
		{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}},
		{{From: 0, To: 2, Weight: 1}, {From: 0, To: 1, Weight: 1}},
	} {
		g := core.MustGraph(4)
		require.NoError(t, g.AddEdges(order...))
		require.NoError(t, g.AddEdges(
			core.Edge{From: 2, To: 3, Weight: 1},
			core.Edge{From: 1, To: 3, Weight: 1},
		))

		tbl, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
		require.NoError(t, err)
		path, err := tbl.PathTo(3)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 3}, path)
	}
}

func TestDistance_String(t *testing.T) {
	require.Equal(t, "unreachable", unreachable.String())
	require.Equal(t, "2.5", reached(2.5).String())
	require.Equal(t, "0", reached(0).String())
}
