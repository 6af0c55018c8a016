package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log levels. Debug turns on the same diagnostics as --verbose.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
)

const (
	configDirName = ".vecctl"
	envPrefix     = "VECCTL"
	maxPrecision  = 9
)

// Config represents the vecctl configuration
type Config struct {
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Geometry GeometryConfig `yaml:"geometry" mapstructure:"geometry"`
	Client   ClientConfig   `yaml:"client" mapstructure:"client"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `yaml:"format" mapstructure:"format"`
	Precision int    `yaml:"precision" mapstructure:"precision"`
}

// GeometryConfig contains numeric settings for vector comparisons
type GeometryConfig struct {
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// ClientConfig contains client-specific configuration
type ClientConfig struct {
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 6,
		},
		Geometry: GeometryConfig{
			Tolerance: 1e-6,
		},
		Client: ClientConfig{
			LogLevel: LogLevelInfo,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.precision", def.Output.Precision)
	v.SetDefault("geometry.tolerance", def.Geometry.Tolerance)
	v.SetDefault("client.log_level", def.Client.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from path. With an empty path the usual
// locations are searched and a missing file yields the defaults. Environment
// variables prefixed with VECCTL_ override file values.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDirName))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes config to path as YAML, creating parent directories
func SaveConfig(path string, config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format: %q", config.Output.Format)
	}

	if config.Output.Precision < 0 || config.Output.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, config.Output.Precision)
	}

	if config.Geometry.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive")
	}

	switch config.Client.LogLevel {
	case LogLevelDebug, LogLevelInfo:
	default:
		return fmt.Errorf("invalid log level: %q", config.Client.LogLevel)
	}

	return nil
}

// GetConfigPath returns the path to the default config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configDirName, "config.yaml"), nil
}
