// Package config defines the runtime configuration model for the
// triegraph CLI and the defaults/precedence rules used to resolve it.
package config

import "fmt"

// Builder names the trie-building strategy.
type Builder string

const (
	BuilderBackTrack   Builder = "backtrack"
	BuilderPositionBFS Builder = "posbfs"
	BuilderNodeBFS     Builder = "nodebfs"
)

// DefaultCutEarlyThreshold bounds Position-BFS's frontier;
// DefaultSetCutoff switches Node-BFS's presence check from linear scan
// to hash set. Both are exposed as flags for tuning.
const (
	DefaultCutEarlyThreshold = 128
	DefaultSetCutoff         = 500
	DefaultAlphabetSize      = 4
)

// Config is the fully-resolved runtime configuration for one `triegraph
// build` invocation. Fields carry `mapstructure`/`yaml` tags so Viper can
// unmarshal them regardless of source (flag, env, or file).
type Config struct {
	GraphPath string `mapstructure:"graph" yaml:"graph"`
	Output    string `mapstructure:"output" yaml:"output"`

	K             int     `mapstructure:"k" yaml:"k"`
	AlphabetSize  uint64  `mapstructure:"alphabetSize" yaml:"alphabetSize"`
	Builder       Builder `mapstructure:"builder" yaml:"builder"`
	LogFormat     string  `mapstructure:"logFormat" yaml:"logFormat"`
	MetricsAddr   string  `mapstructure:"metricsAddr" yaml:"metricsAddr"`

	CutEarlyThreshold int `mapstructure:"cutEarlyThreshold" yaml:"cutEarlyThreshold"`
	SetCutoff         int `mapstructure:"setCutoff" yaml:"setCutoff"`
}

// New returns a Config populated with builtin defaults. Callers merge
// flag/env/YAML values on top via Load.
func New() *Config {
	return &Config{
		Output:            "-",
		AlphabetSize:      DefaultAlphabetSize,
		Builder:           BuilderNodeBFS,
		LogFormat:         "text",
		CutEarlyThreshold: DefaultCutEarlyThreshold,
		SetCutoff:         DefaultSetCutoff,
	}
}

// Validate performs sanity checks after the full precedence merge.
func (c *Config) Validate() error {
	if c.GraphPath == "" {
		return fmt.Errorf("config: graph path is required")
	}
	if c.K <= 0 {
		return fmt.Errorf("config: k must be positive, got %d", c.K)
	}
	switch c.Builder {
	case BuilderBackTrack, BuilderPositionBFS, BuilderNodeBFS:
	default:
		return fmt.Errorf("config: unsupported builder %q", c.Builder)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.LogFormat)
	}
	if c.CutEarlyThreshold < 0 {
		return fmt.Errorf("config: cutEarlyThreshold must be >= 0, got %d", c.CutEarlyThreshold)
	}
	if c.SetCutoff <= 0 {
		return fmt.Errorf("config: setCutoff must be positive, got %d", c.SetCutoff)
	}
	return nil
}
