package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix environment variables are read under, e.g.
// TRIEGRAPH_K, TRIEGRAPH_BUILDER.
const EnvPrefix = "TRIEGRAPH"

// Load constructs a new *Config by merging, in increasing precedence
// order: built-in defaults (New), a YAML config file (explicitPath, or
// TRIEGRAPH_CONFIG_FILE), environment variables prefixed with
// TRIEGRAPH_, and flags bound on cmd. The result is validated before
// being returned. Pass a nil cmd to skip flag binding (e.g. in tests).
func Load(cmd *cobra.Command, explicitPath string) (*Config, error) {
	cfg := New()
	v := viper.New()

	v.SetDefault("output", cfg.Output)
	v.SetDefault("alphabetSize", cfg.AlphabetSize)
	v.SetDefault("builder", string(cfg.Builder))
	v.SetDefault("logFormat", cfg.LogFormat)
	v.SetDefault("cutEarlyThreshold", cfg.CutEarlyThreshold)
	v.SetDefault("setCutoff", cfg.SetCutoff)

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvPrefix + "_CONFIG_FILE")
	}
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		_ = v.BindPFlags(cmd.Flags())
		_ = v.BindPFlags(cmd.PersistentFlags())
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
