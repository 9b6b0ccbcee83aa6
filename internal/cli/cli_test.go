package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/graphio"
)

// execute runs the root command with args and returns stdout and the log stream.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := New(&logs).RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

// writeRoads stores the reference network in dir under name.
func writeRoads(t *testing.T, dir, name string) string {
	t.Helper()
	g := core.MustGraph(6)
	require.NoError(t, g.AddEdges(roadNetwork...))
	path := filepath.Join(dir, name)
	require.NoError(t, graphio.WriteFile(path, g, graphio.FormatAuto))

	return path
}

func decodeResults(t *testing.T, out string) []jsonResult {
	t.Helper()
	var res []jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)

	return res
}

func distances(r jsonResult) []any {
	out := make([]any, len(r.Distances))
	for i, d := range r.Distances {
		if d == nil {
			out[i] = nil
			continue
		}
		out[i] = *d
	}

	return out
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "[0 4 2 3 5 6]")
	assert.Contains(t, out, "0 → 2 → 3 → 5")
	assert.Contains(t, out, "0→1(4)")
}

func TestQueryJSON(t *testing.T) {
	path := writeRoads(t, t.TempDir(), "roads.yaml")

	out, _, err := execute(t, "query", "--graph", path, "--source", "0", "--path", "--output", "json")
	require.NoError(t, err)

	res := decodeResults(t, out)
	require.Len(t, res, 1)
	assert.Equal(t, 0, res[0].Source)
	assert.Equal(t, []any{0.0, 4.0, 2.0, 3.0, 5.0, 6.0}, distances(res[0]))
	assert.Equal(t, []int{0, 2, 3, 5}, res[0].Paths["5"])
	assert.Equal(t, 7, res[0].Stats.Pops)
}

func TestQueryMultiSource(t *testing.T) {
	path := writeRoads(t, t.TempDir(), "roads.json")

	out, _, err := execute(t, "query", "-g", path, "-s", "0", "-s", "3", "-s", "5", "-p", "2", "-o", "json")
	require.NoError(t, err)

	res := decodeResults(t, out)
	require.Len(t, res, 3)
	assert.Equal(t, []int{0, 3, 5}, []int{res[0].Source, res[1].Source, res[2].Source})
	assert.Equal(t, []any{nil, nil, nil, 0.0, 2.0, 3.0}, distances(res[1]))
	assert.Equal(t, []any{nil, nil, nil, nil, nil, 0.0}, distances(res[2]))
	assert.Nil(t, res[0].Paths)
}

func TestQueryTargetTable(t *testing.T) {
	path := writeRoads(t, t.TempDir(), "roads.toml")

	out, logs, err := execute(t, "query", "--graph", path, "--target", "4", "--path", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "source 0")
	assert.Contains(t, out, "0 → 2 → 3 → 4")
	assert.NotContains(t, out, "0 → 2 → 3 → 5")
	assert.Contains(t, logs, "graph loaded")
	assert.Contains(t, logs, "query stats")
}

func TestQueryThresholds(t *testing.T) {
	path := writeRoads(t, t.TempDir(), "roads.txt")

	out, _, err := execute(t, "query", "--graph", path, "--inf-edge-threshold", "3", "-o", "json")
	require.NoError(t, err)
	res := decodeResults(t, out)
	assert.Equal(t, []any{0.0, nil, 2.0, 3.0, 5.0, nil}, distances(res[0]))

	out, _, err = execute(t, "query", "--graph", path, "--max-distance", "4", "-o", "json")
	require.NoError(t, err)
	res = decodeResults(t, out)
	assert.Equal(t, []any{0.0, 4.0, 2.0, 3.0, nil, nil}, distances(res[0]))
}

func TestQueryErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeRoads(t, dir, "roads.txt")

	_, _, err := execute(t, "query", "--graph", path, "--source", "9")
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	_, _, err = execute(t, "query", "--graph", path, "--target", "6")
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	_, _, err = execute(t, "query", "--graph", path, "--output", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, "query", "--graph", filepath.Join(dir, "roads.csv"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	_, _, err = execute(t, "query")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2\n0 1 -3\n"), 0o644))
	_, _, err = execute(t, "query", "--graph", bad)
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestQueryConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeRoads(t, dir, "roads.txt")
	cfg := filepath.Join(dir, "lvpath.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("query:\n  output: json\n  return_path: true\nlog:\n  format: json\n  level: debug\n"), 0o644))

	out, logs, err := execute(t, "--config", cfg, "query", "--graph", path)
	require.NoError(t, err)
	res := decodeResults(t, out)
	assert.Equal(t, []int{0, 2, 3, 4}, res[0].Paths["4"])
	assert.Contains(t, logs, `"msg"`)
	assert.Contains(t, logs, "graph loaded")
}

func TestBFSCommand(t *testing.T) {
	path := writeRoads(t, t.TempDir(), "roads.txt")

	out, _, err := execute(t, "bfs", "--graph", path, "--start", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "levels from 0")
	assert.Contains(t, out, "0  0\n")
	assert.Contains(t, out, "1  1 2\n")
	assert.Contains(t, out, "2  3 4 5\n")

	_, _, err = execute(t, "bfs", "--graph", path, "--start", "-1")
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.json")

	stdout, _, err := execute(t, "gen", "--kind", "grid", "--rows", "2", "--cols", "3", "--bidirectional", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	g, err := graphio.ReadFile(out, graphio.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 14, g.Size())
	for _, e := range g.Edges() {
		assert.True(t, e.Weight >= 1 && e.Weight <= 10, e)
	}
}

func TestGenStdoutDeterministic(t *testing.T) {
	args := []string{"gen", "--kind", "random", "--nodes", "20", "--p", "0.3", "--seed", "7", "--min-weight", "2", "--max-weight", "4"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	doc, err := graphio.DecodeDocument(bytes.NewBufferString(a), graphio.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, 20, doc.Nodes)
	for _, e := range doc.Edges {
		assert.True(t, e.Weight >= 2 && e.Weight <= 4, e)
	}
}

func TestGenErrors(t *testing.T) {
	_, _, err := execute(t, "gen", "--kind", "hexagon")
	assert.Error(t, err)

	_, _, err = execute(t, "gen", "--kind", "path", "--nodes", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "gen", "--min-weight", "5", "--max-weight", "2")
	assert.Error(t, err)
}

func TestLogFormatFlag(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "demo")
	assert.Error(t, err)

	path := writeRoads(t, t.TempDir(), "roads.txt")
	_, logs, err := execute(t, "--log-format", "logfmt", "query", "--graph", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=\"graph loaded\"")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)
}
