// Package cli implements the lvpath command-line interface.
//
// This package provides commands for answering shortest-path queries over
// graph files, level-order traversal, fixture generation and a built-in
// demonstration. The CLI is built using cobra, reads settings through
// internal/config (viper) and logs with charmbracelet/log.
//
// # Commands
//
//   - query: single-source shortest paths, several sources in parallel
//   - bfs:   hop-count levels from a start node
//   - gen:   write a generated graph in any graphio format
//   - demo:  run the six-node reference network
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-format text|json|logfmt. Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/internal/config"
)

const appName = "lvpath"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	logOut io.Writer
	cfg    *config.Config

	cfgFile   string
	verbose   bool
	logFormat string
}

// New creates a CLI whose logs go to logOut.
func New(logOut io.Writer) *CLI {
	return &CLI{logOut: logOut, cfg: config.Default()}
}

// Execute runs the lvpath CLI against os.Args with logs on stderr.
func Execute(ctx context.Context) error {
	return New(os.Stderr).RootCommand().ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "lvpath answers shortest-path queries over weighted digraphs",
		Long:          `lvpath runs Dijkstra's algorithm over graph files (edge list, JSON, YAML, TOML) and prints distances and routes.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default ./lvpath.yaml or ~/.lvpath/lvpath.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "log format: text, json or logfmt")

	root.AddCommand(c.queryCommand())
	root.AddCommand(c.bfsCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.demoCommand())

	return root
}

// setup loads configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.verbose {
		level = log.DebugLevel
	}
	format := cfg.Log.Format
	if c.logFormat != "" {
		format = c.logFormat
	}
	formatter, err := parseFormatter(format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(c.logOut, level, formatter)
	cmd.SetContext(withLogger(ctx, logger))
	logger.Debug("config loaded", "file", c.cfgFile, "parallelism", cfg.Query.Parallelism)

	return nil
}
