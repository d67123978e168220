// Package config provides configuration management for feed builds.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"feedbuilder/internal/encoder"
	"feedbuilder/internal/normalizer"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoCatalog            = errors.New("catalog.path or catalog.sample_size is required")
	ErrInvalidSampleSize    = errors.New("catalog.sample_size must be non-negative")
	ErrNoOutputs            = errors.New("at least one output is required")
	ErrOutputMissingPath    = errors.New("output path is required")
	ErrUnsupportedOutput    = errors.New("output platform/format must be google/xml or facebook/csv")
	ErrDuplicateOutputPath  = errors.New("output paths must be unique")
	ErrNoEnabledOutputs     = errors.New("at least one output must be enabled")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLoggingFormat = errors.New("logging.format must be 'text' or 'json'")
)

// supportedOutputs maps each platform to the format it is produced in.
var supportedOutputs = map[string]string{
	normalizer.PlatformGoogle:   encoder.FormatXML,
	normalizer.PlatformFacebook: encoder.FormatCSV,
}

// Config represents the complete feed build configuration.
type Config struct {
	Catalog CatalogConfig  `yaml:"catalog"`
	Outputs []OutputConfig `yaml:"outputs"`
	Logging LoggingConfig  `yaml:"logging"`
}

// CatalogConfig selects where products come from.
type CatalogConfig struct {
	Path string `yaml:"path"`
	// SampleSize generates placeholder products when Path is empty.
	SampleSize int `yaml:"sample_size"`
}

// OutputConfig is one feed file to produce.
type OutputConfig struct {
	Platform string `yaml:"platform"`
	Format   string `yaml:"format"`
	Path     string `yaml:"path"`
	Enabled  *bool  `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the output should be built. Outputs are enabled
// unless explicitly disabled.
func (o *OutputConfig) IsEnabled() bool {
	return o.Enabled == nil || *o.Enabled
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyDefaults fills in the logging settings and lowercases platform and format names.
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	for i := range c.Outputs {
		c.Outputs[i].Platform = strings.ToLower(strings.TrimSpace(c.Outputs[i].Platform))
		c.Outputs[i].Format = strings.ToLower(strings.TrimSpace(c.Outputs[i].Format))
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalog.SampleSize < 0 {
		return ErrInvalidSampleSize
	}

	if c.Catalog.Path == "" && c.Catalog.SampleSize == 0 {
		return ErrNoCatalog
	}

	if len(c.Outputs) == 0 {
		return ErrNoOutputs
	}

	enabledCount := 0
	paths := make(map[string]int, len(c.Outputs))

	for i, out := range c.Outputs {
		if out.Path == "" {
			return fmt.Errorf("%w: outputs[%d]", ErrOutputMissingPath, i)
		}

		if format, ok := supportedOutputs[out.Platform]; !ok || format != out.Format {
			return fmt.Errorf("%w: outputs[%d] is %s/%s", ErrUnsupportedOutput, i, out.Platform, out.Format)
		}

		if prev, ok := paths[out.Path]; ok {
			return fmt.Errorf("%w: outputs[%d] and outputs[%d] write %s", ErrDuplicateOutputPath, prev, i, out.Path)
		}

		paths[out.Path] = i

		if out.IsEnabled() {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledOutputs
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLoggingFormat
	}

	return nil
}

// EnabledOutputs returns only enabled outputs.
func (c *Config) EnabledOutputs() []OutputConfig {
	var enabled []OutputConfig

	for _, out := range c.Outputs {
		if out.IsEnabled() {
			enabled = append(enabled, out)
		}
	}

	return enabled
}

// String returns a string representation of the config.
func (c *Config) String() string {
	source := c.Catalog.Path
	if source == "" {
		source = fmt.Sprintf("sample(%d)", c.Catalog.SampleSize)
	}

	return fmt.Sprintf(
		"Config{Catalog: %s, Outputs: %d, Enabled: %d}",
		source,
		len(c.Outputs),
		len(c.EnabledOutputs()),
	)
}
