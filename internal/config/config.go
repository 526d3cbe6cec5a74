// Package config provides configuration management for array ingestion and
// validation behavior.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	multierror "github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for array operations
type Config struct {
	// Ingestion Configuration
	IngestChunkSize int `json:"ingest_chunk_size" yaml:"ingest_chunk_size"` // Rows per chunk when building arrays from scalar sequences (0 = single chunk)

	// Validation Configuration
	ValidateUTF8 bool `json:"validate_utf8" yaml:"validate_utf8"` // Reject invalid UTF-8 scalars at ingestion
}

// DefaultConfig returns the default configuration: single-chunk ingestion
// with UTF-8 validation on.
func DefaultConfig() Config {
	return Config{
		IngestChunkSize: 0,
		ValidateUTF8:    true,
	}
}

// MaxIngestChunkSize caps rows per chunk; larger chunks defeat chunked
// storage and make single-element splices rebuild huge buffers.
const MaxIngestChunkSize = 1 << 24

// Validate checks the configuration for invalid settings, aggregating every
// finding rather than stopping at the first.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.IngestChunkSize < 0 {
		result = multierror.Append(result, fmt.Errorf("ingest_chunk_size must be >= 0, got %d", c.IngestChunkSize))
	}
	if c.IngestChunkSize > MaxIngestChunkSize {
		result = multierror.Append(result, fmt.Errorf("ingest_chunk_size must be <= %d, got %d", MaxIngestChunkSize, c.IngestChunkSize))
	}
	return result.ErrorOrNil()
}

// LoadFromFile loads configuration from a YAML file, applying defaults for
// unset fields.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv overlays environment variable overrides onto cfg.
// Recognized variables: LEMUR_INGEST_CHUNK_SIZE, LEMUR_VALIDATE_UTF8.
func LoadFromEnv(cfg Config) Config {
	if v := os.Getenv("LEMUR_INGEST_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IngestChunkSize = n
		}
	}
	if v := os.Getenv("LEMUR_VALIDATE_UTF8"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ValidateUTF8 = b
		}
	}
	return cfg
}

// Global configuration instance
var (
	globalMu     sync.RWMutex
	globalConfig = DefaultConfig()
)

// GetConfig returns the current global configuration.
func GetConfig() Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// SetConfig replaces the global configuration.
func SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
	return nil
}

// ResetConfig restores the global configuration to defaults.
func ResetConfig() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = DefaultConfig()
}
