package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file values. Flags override these.
const (
	EnvInput    = "DADESERASMUS_INPUT"
	EnvOutput   = "DADESERASMUS_OUTPUT"
	EnvLogLevel = "DADESERASMUS_LOG_LEVEL"

	DefaultEnvFile = ".env"
)

var envKeys = []string{EnvInput, EnvOutput, EnvLogLevel}

// ReadEnv collects the override variables from the dotenv file at path and the
// process environment. Process variables win, and a missing file is not an error.
func ReadEnv(path string) (map[string]string, error) {
	env := make(map[string]string)

	if path != "" {
		values, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}

		for _, key := range envKeys {
			if v, ok := values[key]; ok {
				env[key] = v
			}
		}
	}

	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}

	return env, nil
}

// ApplyEnv replaces file values with the non-empty entries of env.
func (c *Config) ApplyEnv(env map[string]string) {
	c.ApplyOverrides(env[EnvInput], env[EnvOutput])

	if level := env[EnvLogLevel]; level != "" {
		c.Converter.Logging.Level = level
	}
}

// ResolveWithEnv resolves the configuration file like Resolve, then layers the
// variables from envFile and the process environment on top.
func ResolveWithEnv(path, envFile string) (*Config, string, error) {
	cfg, resolved, err := Resolve(path)
	if err != nil {
		return nil, resolved, err
	}

	env, err := ReadEnv(envFile)
	if err != nil {
		return nil, resolved, err
	}

	cfg.ApplyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, resolved, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, resolved, nil
}
