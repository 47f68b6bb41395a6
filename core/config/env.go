// File: env.go
// Title: Environment Configuration Source
// Description: Builds a configuration purely from environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation as part of file discovery
// - 2026-10-15 v0.2.0: Split from discovery; first underscore separates the
//                       section; optional section filter

package config

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

// LoadFromEnv loads configuration entirely from environment variables that
// start with envPrefix. The first underscore after the prefix separates the
// section from the key, so APP_STRV_LIMIT_BYTES becomes strv.limit_bytes.
// When sections are given, variables of other sections are skipped.
func LoadFromEnv(envPrefix string, sections ...string) *Config {
	data := make(map[string]interface{})
	prefix := ""
	if envPrefix != "" {
		prefix = strings.ToUpper(envPrefix) + "_"
	}

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || value == "" || !strings.HasPrefix(name, prefix) {
			continue
		}

		section, rest, _ := strings.Cut(strings.ToLower(strings.TrimPrefix(name, prefix)), "_")
		if section == "" || (len(sections) > 0 && !slices.Contains(sections, section)) {
			continue
		}
		key := section
		if rest != "" {
			key += "." + rest
		}

		setNestedValue(data, key, parseEnvValue(value))
	}

	cfg := New(data, envPrefix)
	cfg.source = "env"
	return cfg
}

// parseEnvValue attempts to parse environment variable values as appropriate types
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}

	if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		return intVal
	}

	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}

	return value
}
