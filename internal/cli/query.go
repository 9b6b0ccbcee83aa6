package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

const noTarget = -1

type queryOptions struct {
	graph       string
	format      string
	sources     []int
	target      int
	path        bool
	maxDistance float64
	threshold   float64
	output      string
	parallelism int
}

// queryCommand creates the shortest-path query command.
func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Compute shortest distances from one or more sources",
		Long: `Compute single-source shortest paths over a graph file.

Several --source flags run independent queries concurrently over one
frozen snapshot of the graph.`,
		Example: `  lvpath query --graph roads.txt --source 0
  lvpath query --graph roads.json --source 0 --source 3 --path --output json
  lvpath query --graph roads.yaml --source 0 --target 5 --path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("output") {
				opts.output = c.cfg.Query.Output
			}
			if !flags.Changed("parallelism") {
				opts.parallelism = c.cfg.Query.Parallelism
			}
			if !flags.Changed("path") {
				opts.path = c.cfg.Query.ReturnPath
			}
			var dopts []dijkstra.Option
			if opts.path {
				dopts = append(dopts, dijkstra.WithReturnPath())
			}
			if flags.Changed("max-distance") {
				dopts = append(dopts, dijkstra.WithMaxDistance(opts.maxDistance))
			}
			if flags.Changed("inf-edge-threshold") {
				dopts = append(dopts, dijkstra.WithInfEdgeThreshold(opts.threshold))
			}
			if opts.target != noTarget {
				dopts = append(dopts, dijkstra.WithTarget(opts.target))
			}

			return c.runQuery(cmd, opts, dopts)
		},
	}

	cmd.Flags().StringVarP(&opts.graph, "graph", "g", "", "graph file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "graph format: auto, txt, json, yaml, toml")
	cmd.Flags().IntSliceVarP(&opts.sources, "source", "s", []int{0}, "source node (repeatable)")
	cmd.Flags().IntVarP(&opts.target, "target", "t", noTarget, "stop once this node is settled and report only it")
	cmd.Flags().BoolVar(&opts.path, "path", false, "reconstruct routes")
	cmd.Flags().Float64Var(&opts.maxDistance, "max-distance", 0, "do not settle nodes farther than this")
	cmd.Flags().Float64Var(&opts.threshold, "inf-edge-threshold", 0, "treat arcs at or above this weight as impassable")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output: table or json")
	cmd.Flags().IntVarP(&opts.parallelism, "parallelism", "p", 0, "max concurrent source queries")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (c *CLI) runQuery(cmd *cobra.Command, opts queryOptions, dopts []dijkstra.Option) error {
	if opts.output != "table" && opts.output != "json" {
		return fmt.Errorf("--output %q: want table or json", opts.output)
	}
	if opts.parallelism < 1 {
		return fmt.Errorf("--parallelism must be ≥ 1, got %d", opts.parallelism)
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	g, err := c.loadGraph(ctx, opts.graph, opts.format)
	if err != nil {
		return err
	}

	tables, err := runSources(cmd, g.Freeze(), opts.sources, opts.parallelism, dopts)
	if err != nil {
		return err
	}
	for _, t := range tables {
		st := t.Stats()
		logger.Debug("query stats",
			"source", t.Source(),
			"pops", humanize.Comma(int64(st.Pops)),
			"stale", humanize.Comma(int64(st.StalePops)),
			"relaxations", humanize.Comma(int64(st.Relaxations)))
	}

	out := cmd.OutOrStdout()
	if opts.output == "json" {
		return writeJSON(out, tables, opts)
	}
	writeTables(out, tables, opts)

	return nil
}

// runSources queries every source concurrently over the shared snapshot,
// at most limit at a time. Results keep the order of sources.
func runSources(cmd *cobra.Command, snap *core.Snapshot, sources []int, limit int, dopts []dijkstra.Option) ([]*dijkstra.Table, error) {
	prog := newProgress(loggerFromContext(cmd.Context()))
	tables := make([]*dijkstra.Table, len(sources))

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(limit)
	for i, s := range sources {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := dijkstra.ShortestPaths(snap, s, dopts...)
			if err != nil {
				return fmt.Errorf("source %d: %w", s, err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	prog.done("queries finished", "sources", len(sources), "parallelism", limit)

	return tables, nil
}

// nodesOf lists the rows to print: every node, or only the target.
func nodesOf(t *dijkstra.Table, target int) []int {
	if target != noTarget {
		return []int{target}
	}
	nodes := make([]int, t.Len())
	for v := range nodes {
		nodes[v] = v
	}

	return nodes
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " "+iconArrow+" ")
}

func writeTables(w io.Writer, tables []*dijkstra.Table, opts queryOptions) {
	headers := []string{"Node", "Distance"}
	if opts.path {
		headers = append(headers, "Path")
	}
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printTitle(w, "source %d", t.Source())

		var rows [][]string
		reached := 0
		for _, v := range nodesOf(t, opts.target) {
			d, ok := t.At(v)
			row := []string{strconv.Itoa(v), textNone}
			if ok {
				reached++
				row[1] = strconv.FormatFloat(d, 'g', -1, 64)
			}
			if opts.path {
				cell := textNone
				if p, err := t.PathTo(v); err == nil {
					cell = formatPath(p)
				}
				row = append(row, cell)
			}
			rows = append(rows, row)
		}
		fmt.Fprintln(w, renderTable(headers, rows))
		printDetail(w, "%s of %s reachable", styleNumber.Render(strconv.Itoa(reached)), humanize.Comma(int64(len(rows))))
	}
}

type jsonResult struct {
	Source    int              `json:"source"`
	Target    *int             `json:"target,omitempty"`
	Distances []*float64       `json:"distances"`
	Paths     map[string][]int `json:"paths,omitempty"`
	Stats     jsonStats        `json:"stats"`
}

type jsonStats struct {
	Pushes      int `json:"pushes"`
	Pops        int `json:"pops"`
	StalePops   int `json:"stale_pops"`
	Relaxations int `json:"relaxations"`
	ArcsScanned int `json:"arcs_scanned"`
}

// writeJSON emits one object per source; unreachable distances are null.
func writeJSON(w io.Writer, tables []*dijkstra.Table, opts queryOptions) error {
	results := make([]jsonResult, len(tables))
	for i, t := range tables {
		st := t.Stats()
		r := jsonResult{
			Source:    t.Source(),
			Distances: make([]*float64, t.Len()),
			Stats: jsonStats{
				Pushes: st.Pushes, Pops: st.Pops, StalePops: st.StalePops,
				Relaxations: st.Relaxations, ArcsScanned: st.ArcsScanned,
			},
		}
		if opts.target != noTarget {
			target := opts.target
			r.Target = &target
		}
		for v := range r.Distances {
			if d, ok := t.At(v); ok {
				r.Distances[v] = &d
			}
		}
		if opts.path {
			r.Paths = make(map[string][]int)
			for _, v := range nodesOf(t, opts.target) {
				if p, err := t.PathTo(v); err == nil {
					r.Paths[strconv.Itoa(v)] = p
				}
			}
		}
		results[i] = r
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
