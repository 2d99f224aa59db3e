package duckdb

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Params holds DuckDB-specific configuration.
// Parsed from adapter.Config.Params using mapstructure.
type Params struct {
	// Extensions to install and load (e.g., "httpfs", "spatial", "json")
	Extensions []string `mapstructure:"extensions"`

	// Settings to apply at session level (e.g., memory_limit, threads)
	Settings map[string]string `mapstructure:"settings"`
}

// ParseParams decodes the generic params map into DuckDB params.
// A nil map yields zero-value params.
func ParseParams(raw map[string]any) (Params, error) {
	var params Params
	if raw == nil {
		return params, nil
	}
	if err := mapstructure.Decode(raw, &params); err != nil {
		return Params{}, fmt.Errorf("failed to decode duckdb params: %w", err)
	}
	return params, nil
}
