package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/bfs"
)

// bfsCommand creates the level-order traversal command.
func (c *CLI) bfsCommand() *cobra.Command {
	var (
		graph    string
		format   string
		start    int
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:     "bfs",
		Short:   "Print hop-count levels from a start node",
		Example: `  lvpath bfs --graph roads.txt --start 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx, graph, format)
			if err != nil {
				return err
			}
			res, err := bfs.Levels(g, start, bfs.WithContext(ctx), bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("bfs done", "start", start, "visited", len(res.Order))

			w := cmd.OutOrStdout()
			printTitle(w, "levels from %d", start)
			for d, layer := range res.Levels {
				ids := make([]string, len(layer))
				for i, v := range layer {
					ids[i] = strconv.Itoa(v)
				}
				fmt.Fprintf(w, "  %s  %s\n", styleNumber.Render(strconv.Itoa(d)), strings.Join(ids, " "))
			}
			printDetail(w, "%d of %d nodes visited", len(res.Order), g.Order())

			return nil
		},
	}

	cmd.Flags().StringVarP(&graph, "graph", "g", "", "graph file (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "graph format: auto, txt, json, yaml, toml")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start node")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this depth (0 = unlimited)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
