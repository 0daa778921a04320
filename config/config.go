package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultWorkers is the number of executor workers running blocking
	// filesystem calls off the polling thread
	DefaultWorkers = 8

	// DefaultQueueDepth is the executor work queue capacity. Submissions
	// beyond it are refused rather than queued unboundedly, so the futures
	// layer can surface a dispatch failure instead of stalling its polling
	// thread.
	DefaultQueueDepth = 128
)

// Config contains runtime configuration values for the executor pool.
type Config struct {
	Workers    int // Number of executor workers running blocking calls (Default 8)
	QueueDepth int // Executor work queue capacity (Default 128)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	Workers    *int `yaml:"workers,omitempty" json:"workers,omitempty"`
	QueueDepth *int `yaml:"queue_depth,omitempty" json:"queue_depth,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Workers:    DefaultWorkers,
		QueueDepth: DefaultQueueDepth,
	}
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Workers != nil {
		c.Workers = *override.Workers
	}
	if override.QueueDepth != nil {
		c.QueueDepth = *override.QueueDepth
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
