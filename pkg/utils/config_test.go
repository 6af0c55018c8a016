package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
output:
  format: json
  precision: 3
geometry:
  tolerance: 0.01
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, 0.01, cfg.Geometry.Tolerance)
	assert.Equal(t, "info", cfg.Client.LogLevel, "unset keys keep their defaults")
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", "output:\n  format: yaml\n")
	t.Setenv("VECCTL_OUTPUT_FORMAT", "json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeFile(t, "config.yaml", "output:\n  format: xml\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid output format")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := DefaultConfig()
	want.Output.Format = FormatYAML
	want.Output.Precision = 2

	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }, false},
		{"precision too large", func(c *Config) { c.Output.Precision = 10 }, false},
		{"zero tolerance", func(c *Config) { c.Geometry.Tolerance = 0 }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "csv" }, false},
		{"debug log level", func(c *Config) { c.Client.LogLevel = LogLevelDebug }, true},
		{"unknown log level", func(c *Config) { c.Client.LogLevel = "trace" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
