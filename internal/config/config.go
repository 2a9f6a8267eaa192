// Package config handles configuration loading and validation for Partiso.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"partiso/internal/timestamp"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// WatchConfig contains settings for watch mode.
type WatchConfig struct {
	DebounceSeconds int `json:"debounceSeconds,omitempty"`
}

// Configuration holds all settings for Partiso.
type Configuration struct {
	// DefaultLocale is the locale tag used when a value is rendered without
	// an explicit locale.
	DefaultLocale string `json:"defaultLocale,omitempty"`
	// DisplayPolicy selects which range bound is rendered for display:
	// "first" (the default) or "last".
	DisplayPolicy string `json:"displayPolicy,omitempty"`
	// CacheSize bounds the parse result cache; 0 keeps the built-in default.
	CacheSize int `json:"cacheSize,omitempty"`
	// KeepEra retains era markers in locale-engine patterns.
	KeepEra bool `json:"keepEra,omitempty"`

	Watch *WatchConfig `json:"watch,omitempty"`
}

// Default returns a Configuration with all defaults applied.
func Default() *Configuration {
	c := &Configuration{}
	c.ApplyDefaults()
	return c
}

// Validate checks that the configuration fields hold acceptable values.
func (c *Configuration) Validate() error {
	switch c.DisplayPolicy {
	case "", "first", "last":
	default:
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("displayPolicy must be \"first\" or \"last\", got %q", c.DisplayPolicy),
		}
	}
	if c.CacheSize < 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("cacheSize cannot be negative, got %d", c.CacheSize),
		}
	}
	if c.Watch != nil && c.Watch.DebounceSeconds < 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("watch.debounceSeconds cannot be negative, got %d", c.Watch.DebounceSeconds),
		}
	}
	return nil
}

// ApplyDefaults fills zero-valued fields with their defaults. DefaultLocale
// may stay empty: rendering then uses the fixed English layout. CacheSize 0
// keeps the cache's own default bound.
func (c *Configuration) ApplyDefaults() {
	if c.DisplayPolicy == "" {
		c.DisplayPolicy = "first"
	}
	if c.Watch == nil {
		c.Watch = &WatchConfig{}
	}
	if c.Watch.DebounceSeconds == 0 {
		c.Watch.DebounceSeconds = 2
	}
}

// DisplayFillPolicy returns the fill policy matching DisplayPolicy.
func (c *Configuration) DisplayFillPolicy() timestamp.FillPolicy {
	if c.DisplayPolicy == "last" {
		return timestamp.Last
	}
	return timestamp.First
}

// Load reads, parses and validates a configuration file, then applies
// defaults.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.ApplyDefaults()
	return &config, nil
}
