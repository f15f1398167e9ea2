// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override config file values.
const (
	EnvDataDirectory = "HARVEST_VALIDATOR_DATA_DIRECTORY"
	EnvOut           = "HARVEST_VALIDATOR_OUT"
	EnvLogLevel      = "HARVEST_VALIDATOR_LOG_LEVEL"
	EnvLogFormat     = "HARVEST_VALIDATOR_LOG_FORMAT"
	EnvMetricsFile   = "HARVEST_VALIDATOR_METRICS_FILE"
	EnvStrict        = "HARVEST_VALIDATOR_STRICT"
	EnvSequential    = "HARVEST_VALIDATOR_SEQUENTIAL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DataDirectory string `json:"data_directory,omitempty"` // Directory holding measurement JSON files and photos
	Out           string `json:"out,omitempty"`            // Path to write the run result JSON
	MetricsFile   string `json:"metrics_file,omitempty"`   // Path to write Prometheus textfile metrics

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json console"`

	// Behavior
	Strict     bool `json:"strict,omitempty"`     // Exit non-zero when violations or check errors are found
	Sequential bool `json:"sequential,omitempty"` // Run record checks one after another
}

// Defaults returns the configuration used when nothing else is specified.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.DataDirectory != "" {
		info, err := os.Stat(c.DataDirectory)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDirectory)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: data directory is not a directory: %s", c.DataDirectory)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDirectory == "" {
		result.DataDirectory = defaults.DataDirectory
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.MetricsFile == "" {
		result.MetricsFile = defaults.MetricsFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields: cannot distinguish unset from false, so true wins
	result.Strict = result.Strict || defaults.Strict
	result.Sequential = result.Sequential || defaults.Sequential

	return result
}

// ApplyEnv overrides fields from HARVEST_VALIDATOR_* variables read through
// getenv. Unparseable booleans are reported.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	stringFields := map[string]*string{
		EnvDataDirectory: &c.DataDirectory,
		EnvOut:           &c.Out,
		EnvLogLevel:      &c.LogLevel,
		EnvLogFormat:     &c.LogFormat,
		EnvMetricsFile:   &c.MetricsFile,
	}
	for key, field := range stringFields {
		if v := getenv(key); v != "" {
			*field = v
		}
	}

	boolFields := map[string]*bool{
		EnvStrict:     &c.Strict,
		EnvSequential: &c.Sequential,
	}
	for key, field := range boolFields {
		v := getenv(key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %s: %w", key, err)
		}
		*field = parsed
	}

	return nil
}
