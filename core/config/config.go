// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and accessing
//              configuration data from TOML and YAML sources with environment
//              variable overrides.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Added GetInt64 and New; env lookups are uncached;
//                       removed watching and tracing ids
// - 2026-10-15 v0.3.0: Immutable after load; load failures use the standard
//                       constructors; getters reduced to what settings read

package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/strv/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

var formatNames = [...]string{FormatTOML: "toml", FormatYAML: "yaml", FormatAuto: "auto"}

// String returns the string representation of the format
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Config is a parsed configuration. It is never modified after loading and
// may be shared between goroutines.
type Config struct {
	data      map[string]interface{}
	source    string
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested maps allowed
}

// New creates a configuration from already parsed data. A nil map yields an
// empty configuration whose getters only see environment overrides.
func New(data map[string]interface{}, envPrefix string) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{data: data, source: "memory", envPrefix: envPrefix}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.ValidationFailed(errors.ModuleConfig, "load", "path", filePath, "must not be empty")
	}

	content, err := os.ReadFile(filePath)
	switch {
	case os.IsNotExist(err):
		return nil, errors.NotFound(errors.ModuleConfig, "load", filePath)
	case err != nil:
		return nil, errors.ConfigLoadFailed(filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleConfig, "load", filePath, format.String(), err)
	}
	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{data: data, source: filePath, envPrefix: options.EnvPrefix}, nil
}

// LoadFromString parses content in the given format. FormatAuto means TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleConfig, "parse", "string", format.String(), err)
	}
	return &Config{data: data, source: "string"}, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		err = fmt.Errorf("unsupported format %d", int(format))
	}
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data. Nested maps
// are merged key by key.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		dm, dok := defaults[k].(map[string]interface{})
		vm, vok := v.(map[string]interface{})
		if dok && vok {
			result[k] = mergeDefaults(vm, dm)
			continue
		}
		result[k] = v
	}
	return result
}

// Source names where the configuration came from: a file path, "string",
// "env" or "memory".
func (c *Config) Source() string {
	return c.source
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, _ := c.lookup(key)
	switch v := value.(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// GetInt returns an integer configuration value with optional default. Values
// that do not fit an int yield the default.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	def := 0
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}
	v := c.GetInt64(key, int64(def))
	if v > math.MaxInt || v < math.MinInt {
		return def
	}
	return int(v)
}

// GetInt64 returns an int64 configuration value with optional default. TOML
// integers decode as int64, YAML integers as int; both are accepted, as are
// decimal strings.
func (c *Config) GetInt64(key string, defaultValue ...int64) int64 {
	value, _ := c.lookup(key)
	if v, ok := toInt64(value); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Keys returns every leaf key in dot notation, sorted. Environment overrides
// are not included.
func (c *Config) Keys() []string {
	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			if prefix != "" {
				k = prefix + "." + k
			}
			if sub, ok := v.(map[string]interface{}); ok {
				walk(k, sub)
				continue
			}
			keys = append(keys, k)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// lookup resolves key in dot notation. A non-empty environment override
// wins over the parsed data and is returned as the raw string.
func (c *Config) lookup(key string) (value interface{}, fromEnv bool) {
	if env := os.Getenv(c.envKey(key)); env != "" {
		return env, true
	}

	current := c.data
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return current[parts[len(parts)-1]], false
}

// envKey converts a config key to environment variable format:
// strv.limit_bytes -> STRV_LIMIT_BYTES (with prefix APP -> APP_STRV_LIMIT_BYTES)
func (c *Config) envKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// setNestedValue sets a nested value in a map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	parts := strings.Split(key, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
