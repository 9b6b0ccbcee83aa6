// Package config loads lvpath CLI settings from a YAML file and LVPATH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName   = "lvpath"
	envPrefix = "LVPATH"
)

// Config is the full lvpath settings tree, one section per concern.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Graph GraphConfig `mapstructure:"graph"`
	Query QueryConfig `mapstructure:"query"`
	Gen   GenConfig   `mapstructure:"gen"`
}

// LogConfig selects the logger level (debug, info, warn, error) and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GraphConfig controls how graph files are read.
type GraphConfig struct {
	// Format of graph files: auto, txt, json, yaml, toml.
	Format string `mapstructure:"format"`
	// AllowLoops is passed to core.WithLoops when decoding.
	AllowLoops bool `mapstructure:"allow_loops"`
}

// QueryConfig holds defaults for the query command.
type QueryConfig struct {
	// Parallelism caps concurrent multi-source queries.
	Parallelism int    `mapstructure:"parallelism"`
	Output      string `mapstructure:"output"`
	ReturnPath  bool   `mapstructure:"return_path"`
}

// GenConfig holds defaults for the gen command.
type GenConfig struct {
	Seed      int64 `mapstructure:"seed"`
	MinWeight int   `mapstructure:"min_weight"`
	MaxWeight int   `mapstructure:"max_weight"`
}

// Load reads the configuration from file and environment variables.
// An empty cfgFile searches ./lvpath.yaml then $HOME/.lvpath/lvpath.yaml;
// a missing file there is not an error. An explicit cfgFile must exist.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, "."+appName))
		}
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("graph.format", "auto")
	v.SetDefault("graph.allow_loops", true)
	v.SetDefault("query.parallelism", runtime.NumCPU())
	v.SetDefault("query.output", "table")
	v.SetDefault("query.return_path", false)
	v.SetDefault("gen.seed", 1)
	v.SetDefault("gen.min_weight", 1)
	v.SetDefault("gen.max_weight", 10)
}

// Validate rejects values no command can run with.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("config: log.format %q: want text, json or logfmt", c.Log.Format)
	}
	switch c.Query.Output {
	case "table", "json":
	default:
		return fmt.Errorf("config: query.output %q: want table or json", c.Query.Output)
	}
	if c.Query.Parallelism < 1 {
		return fmt.Errorf("config: query.parallelism must be ≥ 1, got %d", c.Query.Parallelism)
	}
	if c.Gen.MinWeight < 0 || c.Gen.MaxWeight < c.Gen.MinWeight {
		return fmt.Errorf("config: gen weights need 0 ≤ min_weight ≤ max_weight, got %d..%d",
			c.Gen.MinWeight, c.Gen.MaxWeight)
	}

	return nil
}
