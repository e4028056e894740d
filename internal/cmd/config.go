package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to config keys to form environment variable names,
// e.g. ICONJAR_LOG_LEVEL.
const EnvPrefix = "ICONJAR"

// Config holds the settings shared by the subcommands. Values come from, in
// increasing priority: defaults, the config file, ICONJAR_* environment
// variables and command line flags.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	Overwrite   bool   `mapstructure:"overwrite"`
	DefaultSize int    `mapstructure:"default_size"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"overwrite": "overwrite",
	"size":      "default_size",
}

// loadConfig resolves the configuration for cmd. Flags the command does not
// define are ignored.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("overwrite", defaults.Overwrite)
	v.SetDefault("default_size", defaults.DefaultSize)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", f.Value.String(), err)
		}
	}

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger for a subcommand run.
func setup(cmd *cobra.Command) (Config, *log.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return Config{}, nil, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, logger, nil
}
