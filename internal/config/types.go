// Package config provides configuration loading for Quarry.
// This package is decoupled from CLI concerns so other tools can load the
// same configuration without pulling in cobra.
package config

import (
	"fmt"
	"strings"

	"github.com/quarryhq/quarry/pkg/adapter"
	"github.com/quarryhq/quarry/pkg/core"
)

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Type string `koanf:"type"` // adapter type, e.g. duckdb

	// File-based databases; ":memory:" opens an in-memory database.
	Path string `koanf:"path"`

	// Schema overrides the dialect's default schema.
	Schema string `koanf:"schema"`

	// Options are driver-generic string options.
	Options map[string]string `koanf:"options"`

	// Params holds adapter-specific configuration (e.g. DuckDB extensions
	// and settings).
	Params map[string]any `koanf:"params"`
}

// Config holds all Quarry configuration options.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Verbose  bool           `koanf:"verbose"`
}

// ToAdapterConfig converts the database section into an adapter config.
func (d *DatabaseConfig) ToAdapterConfig() core.AdapterConfig {
	return core.AdapterConfig{
		Type:    d.Type,
		Path:    d.Path,
		Schema:  d.Schema,
		Options: d.Options,
		Params:  d.Params,
	}
}

// Validate checks if the database configuration is valid. It uses the
// adapter registry to determine which adapter types are available.
func (d *DatabaseConfig) Validate() error {
	if d.Type == "" {
		return fmt.Errorf("database type is required")
	}
	if !adapter.IsRegistered(strings.ToLower(d.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      d.Type,
			Available: adapter.ListAdapters(),
		}
	}
	return nil
}
