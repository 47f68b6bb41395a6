// File: settings.go
// Title: Settings
// Description: Allocator and logger settings read from configuration files
//              or the environment and applied to the package defaults.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: ParseSettings; unknown keys are logged; pool class
//                       bits are range checked in Apply

package strv

import (
	"io"
	"strings"

	"github.com/msto63/strv/core/config"
	"github.com/msto63/strv/core/errors"
	"github.com/msto63/strv/core/log"
)

// Allocator names accepted in Settings
const (
	AllocatorHeap  = "heap"
	AllocatorPool  = "pool"
	AllocatorLimit = "limit"
)

// Settings selects the default allocator and the package logger
type Settings struct {
	Allocator        string    `toml:"allocator" yaml:"allocator"`
	LimitBytes       int64     `toml:"limit_bytes" yaml:"limit_bytes"`
	PoolMaxClassBits int       `toml:"pool_max_class_bits" yaml:"pool_max_class_bits"`
	LogLevel         string    `toml:"-" yaml:"-"`
	LogFormat        string    `toml:"-" yaml:"-"`
	LogOutput        io.Writer `toml:"-" yaml:"-"` // nil means stderr
}

// DefaultSettings returns the settings in effect before Apply is called
func DefaultSettings() Settings {
	return Settings{
		Allocator:        AllocatorHeap,
		PoolMaxClassBits: DefaultPoolMaxClassBits,
		LogLevel:         "warn",
		LogFormat:        "json",
	}
}

var settingsRules = config.ValidationRules{
	"strv.allocator":           {Type: "string", OneOf: []string{AllocatorHeap, AllocatorPool, AllocatorLimit}},
	"strv.limit_bytes":         {Type: "int", Min: config.Int64(0)},
	"strv.pool_max_class_bits": {Type: "int", Min: config.Int64(minClassBits), Max: config.Int64(maxPoolClassBits)},
	"log.level":                {Type: "string"},
	"log.format":               {Type: "string"},
}

// SettingsFromConfig reads the strv.* and log.* keys of cfg on top of
// DefaultSettings. Invalid values fail with INVALID_CONFIG. Unknown keys in
// those sections are logged and ignored.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	if cfg == nil {
		return Settings{}, errors.StrvInvalidInput("strv.SettingsFromConfig", nil)
	}
	if err := cfg.Validate(settingsRules).Err(); err != nil {
		return Settings{}, err
	}

	for _, key := range cfg.Keys() {
		section, _, _ := strings.Cut(key, ".")
		if _, known := settingsRules[key]; !known && (section == "strv" || section == "log") {
			Logger().Warn("unknown setting ignored", log.Fields{"key": key, "source": cfg.Source()})
		}
	}

	s := DefaultSettings()
	s.Allocator = strings.ToLower(cfg.GetString("strv.allocator", s.Allocator))
	s.LimitBytes = cfg.GetInt64("strv.limit_bytes", s.LimitBytes)
	s.PoolMaxClassBits = cfg.GetInt("strv.pool_max_class_bits", s.PoolMaxClassBits)
	s.LogLevel = cfg.GetString("log.level", s.LogLevel)
	s.LogFormat = cfg.GetString("log.format", s.LogFormat)
	return s, nil
}

// LoadSettings reads settings from a TOML or YAML file. An empty path reads
// the environment only (STRV_ALLOCATOR, STRV_LIMIT_BYTES, LOG_LEVEL, ...).
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return SettingsFromConfig(config.LoadFromEnv("", "strv", "log"))
	}
	cfg, err := config.LoadWithOptions(path, config.LoadOptions{Format: config.FormatAuto})
	if err != nil {
		return Settings{}, err
	}
	return SettingsFromConfig(cfg)
}

// ParseSettings reads settings from TOML or YAML text, for example an
// embedded default file. Environment overrides still apply.
func ParseSettings(content string, format config.Format) (Settings, error) {
	cfg, err := config.LoadFromString(content, format)
	if err != nil {
		return Settings{}, err
	}
	return SettingsFromConfig(cfg)
}

// Apply installs the allocator and logger described by s. Nothing changes
// when s is invalid.
func Apply(s Settings) error {
	alloc, err := s.newAllocator()
	if err != nil {
		return err
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return errors.ConfigInvalid("log.level", s.LogLevel, "trace, debug, info, warn, error or fatal")
	}
	if _, err := log.ParseFormat(s.LogFormat); err != nil {
		return errors.ConfigInvalid("log.format", s.LogFormat, "json, text, console or logfmt")
	}

	cfg := log.DefaultLoggerConfig("strv")
	cfg.Level = s.LogLevel
	cfg.Format = s.LogFormat
	cfg.Output = s.LogOutput
	logger := log.NewLogger(cfg)

	SetDefaultAllocator(alloc)
	SetLogger(logger)

	logger.Debug("settings applied", log.Fields{
		"allocator":           s.Allocator,
		"limit_bytes":         s.LimitBytes,
		"pool_max_class_bits": s.PoolMaxClassBits,
	})
	return nil
}

func (s Settings) newAllocator() (Allocator, error) {
	kind := strings.ToLower(s.Allocator)
	switch kind {
	case AllocatorHeap, "":
		return HeapAllocator{}, nil
	case AllocatorPool, AllocatorLimit:
	default:
		return nil, errors.StrvInvalidInput("strv.Apply", s.Allocator)
	}

	if kind == AllocatorLimit && s.LimitBytes <= 0 {
		return nil, errors.StrvInvalidOperation("strv.Apply", "limit allocator needs a positive limit")
	}
	if s.PoolMaxClassBits < minClassBits || s.PoolMaxClassBits > maxPoolClassBits {
		return nil, errors.OutOfRange(errors.ModuleStrv, "strv.Apply", "pool_max_class_bits", s.PoolMaxClassBits, minClassBits, maxPoolClassBits)
	}

	pool := NewPoolAllocator(s.PoolMaxClassBits)
	if kind == AllocatorPool {
		return pool, nil
	}
	return NewLimitAllocator(pool, s.LimitBytes), nil
}
