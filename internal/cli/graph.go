package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/graphio"
)

// loadGraph decodes the graph file at path. An empty format falls back to
// graph.format from the configuration.
func (c *CLI) loadGraph(ctx context.Context, path, format string) (*core.Graph, error) {
	if path == "" {
		return nil, fmt.Errorf("--graph is required")
	}
	if format == "" {
		format = c.cfg.Graph.Format
	}
	f, err := graphio.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	g, err := graphio.ReadFile(path, f, core.WithLoops(c.cfg.Graph.AllowLoops))
	if err != nil {
		return nil, err
	}
	prog.done("graph loaded",
		"path", path,
		"nodes", humanize.Comma(int64(g.Order())),
		"arcs", humanize.Comma(int64(g.Size())))

	return g, nil
}
