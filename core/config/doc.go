// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration loading for the strv
//              module with TOML and YAML support, environment overrides and
//              declarative validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Trimmed to loading, typed access and validation

/*
Package config provides configuration management for the strv module.

Key Features:
  - TOML and YAML sources with detection by file extension
  - Dot-notation access with string and integer getters and defaults
  - Environment variable overrides (strv.limit_bytes -> STRV_LIMIT_BYTES)
  - Declarative validation returning structured errors
  - Load failures carry the config module, the load operation and the
    codes VALIDATION_FAILED, NOT_FOUND, CONFIG_ERROR or INVALID_FORMAT

# Basic Configuration Loading

	cfg, err := config.Load("strv.toml")
	if err != nil {
		return err
	}

	allocator := cfg.GetString("strv.allocator", "heap")
	limit := cfg.GetInt64("strv.limit_bytes", 0)

# Validation

	result := cfg.Validate(config.ValidationRules{
		"strv.allocator":   {Type: "string", OneOf: []string{"heap", "pool", "limit"}},
		"strv.limit_bytes": {Type: "int", Min: config.Int64(0)},
	})
	if err := result.Err(); err != nil {
		return err
	}

# Environment Only

	cfg := config.LoadFromEnv("APP", "strv") // APP_STRV_ALLOCATOR -> strv.allocator
*/
package config
