// Package config loads the cryptanalysis settings from YAML or TOML files,
// with environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/satvik1402/Security-Attacks/internal/vigenere"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvMaxKeyLength = "VIGENERE_MAX_KEY_LENGTH"
	EnvWorkers      = "VIGENERE_WORKERS"
	EnvLogLevel     = "VIGENERE_LOG_LEVEL"
)

// Config holds all settings.
type Config struct {
	Search  SearchConfig  `yaml:"search" toml:"search"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// SearchConfig configures the key search.
type SearchConfig struct {
	MaxKeyLength int `yaml:"max_key_length" toml:"max_key_length"` // longest key length tried
	Workers      int `yaml:"workers" toml:"workers"`               // key lengths evaluated at once
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxKeyLength: vigenere.DefaultMaxKeyLength,
			Workers:      vigenere.DefaultWorkers,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. An empty path or a missing file yields
// the defaults. The format is chosen by extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return nil
}

// Save writes the configuration to path as YAML or TOML, by extension.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = out
	case ".toml":
		var buf strings.Builder
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = []byte(buf.String())
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvMaxKeyLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxKeyLength, err)
		}
		c.Search.MaxKeyLength = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Search.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Search.MaxKeyLength < 1 {
		return fmt.Errorf("search.max_key_length must be at least 1, got %d", c.Search.MaxKeyLength)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers must be at least 1, got %d", c.Search.Workers)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
