package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "quarry.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "quarry.yml"

// EnvPrefix is the prefix for configuration environment variables, e.g.
// QUARRY_DATABASE_PATH maps to database.path.
const EnvPrefix = "QUARRY_"

func defaults() map[string]any {
	return map[string]any{
		"database.type":   "duckdb",
		"database.path":   ":memory:",
		"database.schema": "",
		"verbose":         false,
	}
}

// Load loads configuration in precedence order (lowest to highest):
// defaults, config file, QUARRY_* environment variables, flags.
// An empty cfgFile searches the working directory for quarry.yaml or
// quarry.yml; a missing file is not an error. A nil flag set skips the
// flag layer.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		cfgFile = findConfigFile(".")
	} else if _, err := os.Stat(cfgFile); err != nil {
		return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithValue(flags, ".", k, flagToKey), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// flagKeys maps CLI flag names to config keys. Flags not listed here do
// not feed the config (e.g. --config itself).
var flagKeys = map[string]string{
	"database": "database.path",
	"type":     "database.type",
	"schema":   "database.schema",
	"verbose":  "verbose",
}

func flagToKey(key string, value string) (string, any) {
	if mapped, ok := flagKeys[key]; ok {
		return mapped, value
	}
	return "", nil
}

// findConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}
