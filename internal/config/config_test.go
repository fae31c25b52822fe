package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "error", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Logger.OutputPaths)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, 1, cfg.Defaults.Count)
	assert.Equal(t, "id", cfg.Defaults.Key)
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	cfg := Config{
		Logger:   LoggerConfig{Level: "debug", Format: "json"},
		Output:   OutputConfig{Format: FormatYAML},
		Defaults: DefaultsConfig{Count: 3, Key: "name"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, 3, cfg.Defaults.Count)
	assert.Equal(t, "name", cfg.Defaults.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"json output", func(c *Config) { c.Output.Format = FormatJSON }, false},
		{"unknown output", func(c *Config) { c.Output.Format = "xml" }, true},
		{"unknown log format", func(c *Config) { c.Logger.Format = "logfmt" }, true},
		{"negative count", func(c *Config) { c.Defaults.Count = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			cfg.ApplyDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FromViper(t *testing.T) {
	v := viper.New()
	v.Set("output.format", "json")
	v.Set("defaults.count", 4)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Defaults.Count)
	assert.Equal(t, "id", cfg.Defaults.Key)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pureext.yaml")
	content := "logger:\n  level: debug\noutput:\n  format: yaml\ndefaults:\n  key: name\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "name", cfg.Defaults.Key)
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("output.format", "xml")

	cfg, err := Load(v)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
