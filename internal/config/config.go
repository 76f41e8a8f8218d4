package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up when --config is not given.
const DefaultConfigFile = ".csvcheck.yaml"

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	// Enabled turns run recording on or off.
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database file.
	DBPath string `yaml:"db_path"`

	// KeepRuns is the number of most recent runs to keep (0 = unlimited).
	KeepRuns int `yaml:"keep_runs"`
}

// Config represents csvcheck configuration options.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Recursive enables descending into subdirectories during discovery
	Recursive bool `yaml:"recursive"`

	// ExcludeDirs lists directory names skipped during discovery
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// ExtraTypes are additional accepted item type values, on top of the
	// built-in task/milestone/release/meeting vocabulary
	ExtraTypes []string `yaml:"extra_types"`

	// History contains run history configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		Recursive:   true,
		ExcludeDirs: []string{"node_modules", "vendor"},
		ExtraTypes:  nil,
		History: HistoryConfig{
			Enabled:  true,
			DBPath:   ".csvcheck/history.db",
			KeepRuns: 100,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (must be trace, debug, info, warn, or error)", c.LogLevel)
	}

	if c.History.KeepRuns < 0 {
		return fmt.Errorf("history.keep_runs must be >= 0, got %d", c.History.KeepRuns)
	}

	return nil
}
