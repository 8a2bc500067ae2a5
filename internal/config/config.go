// Package config provides configuration management for the converter commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dadeserasmus/internal/logger"
)

// Defaults matching the files used by the web front end.
const (
	DefaultInput     = "dadeserasmus.xlsx"
	DefaultOutput    = "data.json"
	DefaultLogLevel  = "warn"
	DefaultSheetName = "Dades"
	DefaultMaxWidth  = 40
	DefaultPath      = "configs/converter.yaml"
)

// Configuration validation errors.
var (
	ErrMissingInput       = errors.New("converter.input is required")
	ErrMissingOutput      = errors.New("converter.output is required")
	ErrSameInputOutput    = errors.New("converter.input and converter.output must differ")
	ErrInvalidLogLevel    = errors.New("converter.logging.level must be one of: debug, info, warn, error")
	ErrEmptyOriginAlias   = errors.New("converter.normalization.origins entries must have a non-empty alias and canonical name")
	ErrInvalidMaxWidth    = errors.New("roster.max_width must be at least 4")
	ErrMissingWorkbookOut = errors.New("workbook.output is required")
)

// Config represents the complete configuration.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Roster    RosterConfig    `yaml:"roster"`
	Workbook  WorkbookConfig  `yaml:"workbook"`
}

// ConverterConfig contains spreadsheet to JSON settings.
type ConverterConfig struct {
	Input         string              `yaml:"input"`
	Output        string              `yaml:"output"`
	Logging       LoggingConfig       `yaml:"logging"`
	Normalization NormalizationConfig `yaml:"normalization"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// NormalizationConfig extends the built-in corrections.
type NormalizationConfig struct {
	Origins  map[string]string `yaml:"origins"`
	Programs bool              `yaml:"programs"`
}

// RosterConfig controls the table printed by the roster command.
type RosterConfig struct {
	MaxWidth int `yaml:"max_width"`
}

// WorkbookConfig controls the JSON to xlsx export.
type WorkbookConfig struct {
	Output    string `yaml:"output"`
	SheetName string `yaml:"sheet_name"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Converter: ConverterConfig{
			Input:   DefaultInput,
			Output:  DefaultOutput,
			Logging: LoggingConfig{Level: DefaultLogLevel},
		},
		Roster: RosterConfig{MaxWidth: DefaultMaxWidth},
		Workbook: WorkbookConfig{
			Output:    DefaultInput,
			SheetName: DefaultSheetName,
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Resolve loads path when given, else DefaultPath when that file exists, else the defaults.
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return DefaultConfig(), "", nil
		}
		path = DefaultPath
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// SaveConfig saves configuration to a YAML file.
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

// Validate validates the configuration.
func (c *Config) Validate() error {
	conv := c.Converter

	if strings.TrimSpace(conv.Input) == "" {
		return ErrMissingInput
	}

	if strings.TrimSpace(conv.Output) == "" {
		return ErrMissingOutput
	}

	if conv.Input == conv.Output {
		return ErrSameInputOutput
	}

	if _, ok := logger.ParseLevel(conv.Logging.Level); !ok {
		return ErrInvalidLogLevel
	}

	for alias, canonical := range conv.Normalization.Origins {
		if alias == "" || strings.TrimSpace(canonical) == "" {
			return fmt.Errorf("%w: %q", ErrEmptyOriginAlias, alias)
		}
	}

	if c.Roster.MaxWidth < 4 {
		return ErrInvalidMaxWidth
	}

	if strings.TrimSpace(c.Workbook.Output) == "" {
		return ErrMissingWorkbookOut
	}

	return nil
}

// ApplyOverrides replaces file values with non-empty command-line values.
func (c *Config) ApplyOverrides(input, output string) {
	if input != "" {
		c.Converter.Input = input
	}

	if output != "" {
		c.Converter.Output = output
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, OriginAliases: %d, Programs: %t}",
		c.Converter.Input,
		c.Converter.Output,
		len(c.Converter.Normalization.Origins),
		c.Converter.Normalization.Programs,
	)
}
