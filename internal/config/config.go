package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Pure-Company/pureext/arrayext"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Output   OutputConfig   `mapstructure:"output"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

type LoggerConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// OutputConfig controls how command results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// DefaultsConfig holds the values helpers fall back to when a flag is not given.
type DefaultsConfig struct {
	Count int    `mapstructure:"count"`
	Key   string `mapstructure:"key"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = "error"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "console"
	}
	if len(c.Logger.OutputPaths) == 0 {
		c.Logger.OutputPaths = []string{"stderr"}
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Defaults.Count == 0 {
		c.Defaults.Count = arrayext.DefaultCount
	}
	if c.Defaults.Key == "" {
		c.Defaults.Key = arrayext.DefaultKey
	}
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Output.Format)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", c.Logger.Format)
	}
	if c.Defaults.Count < 0 {
		return fmt.Errorf("default count must not be negative, got %d", c.Defaults.Count)
	}
	return nil
}

// Load unmarshals v into a Config, fills defaults and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
