package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// roadNetwork is the six-node reference network; distances from 0 are [0 4 2 3 5 6].
var roadNetwork = []core.Edge{
	{From: 0, To: 1, Weight: 4},
	{From: 0, To: 2, Weight: 2},
	{From: 1, To: 3, Weight: 5},
	{From: 2, To: 3, Weight: 1},
	{From: 1, To: 4, Weight: 10},
	{From: 3, To: 4, Weight: 2},
	{From: 3, To: 5, Weight: 3},
	{From: 2, To: 5, Weight: 8},
	{From: 4, To: 5, Weight: 6},
}

// demoCommand creates the built-in demonstration command.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run shortest paths on a built-in six-node network",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := core.MustGraph(6)
			if err := g.AddEdges(roadNetwork...); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "arcs")
			for _, e := range g.Edges() {
				printDetail(w, "%s", e)
			}
			fmt.Fprintln(w)

			t, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
			if err != nil {
				return err
			}
			writeTables(w, []*dijkstra.Table{t}, queryOptions{target: noTarget, path: true})
			fmt.Fprintln(w)
			printSuccess(w, "distances %s", t)

			return nil
		},
	}
}
