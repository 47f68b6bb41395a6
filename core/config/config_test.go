// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, load failures, environment
//              overrides, defaults, validation and the environment-only source.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Int64 access, nested defaults, validation rules

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/strv/core/error"
	mdwerrors "github.com/msto63/strv/core/errors"
)

const tomlContent = `
[strv]
allocator = "pool"
limit_bytes = 1048576
pool_max_class_bits = 16

[log]
level = "debug"
format = "logfmt"
async = true
`

const yamlContent = `
strv:
  allocator: limit
  limit_bytes: 4096
log:
  level: warn
`

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "strv.toml")
		if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("strv.allocator"); got != "pool" {
			t.Errorf("Expected allocator 'pool', got '%s'", got)
		}
		if got := cfg.GetInt64("strv.limit_bytes"); got != 1048576 {
			t.Errorf("Expected limit 1048576, got %d", got)
		}
		if got := cfg.GetInt("strv.pool_max_class_bits"); got != 16 {
			t.Errorf("Expected 16, got %d", got)
		}
		if got := cfg.GetString("log.async"); got != "true" {
			t.Errorf("Expected non-string values to print, got %q", got)
		}
		if cfg.Source() != configPath {
			t.Errorf("Source() = %q, want %q", cfg.Source(), configPath)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "strv.yaml")
		if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("strv.allocator"); got != "limit" {
			t.Errorf("Expected allocator 'limit', got '%s'", got)
		}
		if got := cfg.GetInt64("strv.limit_bytes"); got != 4096 {
			t.Errorf("Expected limit 4096, got %d", got)
		}
		if got := cfg.GetInt("log.level", 7); got != 7 {
			t.Errorf("Expected default for a non-numeric value, got %d", got)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		missing := filepath.Join(tempDir, "missing.toml")
		_, err := Load(missing)
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
		if mdwerrors.ExtractModule(err) != mdwerrors.ModuleConfig || mdwerrors.ExtractOperation(err) != "load" {
			t.Errorf("Expected config.load origin, got %v", err)
		}
		var structured *mdwerror.Error
		if errors.As(err, &structured) {
			if id, _ := structured.Detail("identifier"); id != missing {
				t.Errorf("identifier = %v, want %s", id, missing)
			}
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
			t.Errorf("Expected VALIDATION_FAILED, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "bad.toml")
		if err := os.WriteFile(configPath, []byte("[strv\nallocator = "), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := Load(configPath)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("Expected INVALID_FORMAT, got %v", err)
		}
		if !strings.Contains(err.Error(), "cannot parse "+configPath+" as toml") {
			t.Errorf("Expected path and format in %q", err.Error())
		}
	})

	t.Run("unreadable path", func(t *testing.T) {
		_, err := Load(tempDir)
		if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
			t.Errorf("Expected CONFIG_ERROR for a directory, got %v", err)
		}
		if mdwerrors.ExtractOperation(err) != "load" {
			t.Errorf("Expected load operation, got %q", mdwerrors.ExtractOperation(err))
		}
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(configPath, []byte("[strv]\nallocator = \"heap\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"strv": map[string]interface{}{"allocator": "pool", "limit_bytes": 64},
			"log":  map[string]interface{}{"level": "info"},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("strv.allocator"); got != "heap" {
		t.Errorf("file value should win, got %q", got)
	}
	if got := cfg.GetInt64("strv.limit_bytes"); got != 64 {
		t.Errorf("nested default should survive, got %d", got)
	}
	if got := cfg.GetString("log.level"); got != "info" {
		t.Errorf("section default should survive, got %q", got)
	}
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		wantErr bool
	}{
		{"toml", tomlContent, FormatTOML, false},
		{"yaml", yamlContent, FormatYAML, false},
		{"auto means toml", tomlContent, FormatAuto, false},
		{"empty", "", FormatTOML, false},
		{"invalid yaml", "strv: [", FormatYAML, true},
		{"unknown format", "x", Format(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFromString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Source() != "string" {
				t.Errorf("Source() = %q, want string", cfg.Source())
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("Expected INVALID_FORMAT, got %v", err)
			}
		})
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	t.Setenv("STRV_ALLOCATOR", "limit")
	t.Setenv("STRV_LIMIT_BYTES", "99")

	if got := cfg.GetString("strv.allocator"); got != "limit" {
		t.Errorf("env should override, got %q", got)
	}
	if got := cfg.GetInt64("strv.limit_bytes"); got != 99 {
		t.Errorf("env should override, got %d", got)
	}

	prefixed := New(nil, "app")
	t.Setenv("APP_LOG_LEVEL", "error")
	if got := prefixed.GetString("log.level"); got != "error" {
		t.Errorf("prefixed env lookup failed, got %q", got)
	}
	t.Setenv("APP_LOG_FORMAT", "")
	if got := prefixed.GetString("log.format", "json"); got != "json" {
		t.Errorf("an empty variable must not override, got %q", got)
	}
}

func TestKeys(t *testing.T) {
	cfg := New(map[string]interface{}{
		"strv": map[string]interface{}{"allocator": "heap", "limit_bytes": int64(10)},
		"log":  map[string]interface{}{"level": "info"},
	}, "")

	want := []string{"log.level", "strv.allocator", "strv.limit_bytes"}
	got := cfg.Keys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if len(New(nil, "").Keys()) != 0 {
		t.Error("an empty configuration has no keys")
	}
}

func TestGetIntConversions(t *testing.T) {
	cfg := New(map[string]interface{}{
		"num": map[string]interface{}{
			"int":    3,
			"int64":  int64(4),
			"whole":  5.0,
			"frac":   5.5,
			"padded": " 6 ",
			"word":   "six",
		},
	}, "")

	tests := []struct {
		key  string
		want int64
	}{
		{"num.int", 3}, {"num.int64", 4}, {"num.whole", 5}, {"num.frac", -1},
		{"num.padded", 6}, {"num.word", -1}, {"num.missing", -1},
	}
	for _, tt := range tests {
		if got := cfg.GetInt64(tt.key, -1); got != tt.want {
			t.Errorf("GetInt64(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(`
[strv]
allocator = "arena"
limit_bytes = -5
pool_max_class_bits = "many"
`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	t.Setenv("LOG_LEVEL", "")

	rules := ValidationRules{
		"strv.allocator":           {Type: "string", OneOf: []string{"heap", "pool", "limit"}},
		"strv.limit_bytes":         {Type: "int", Min: Int64(0)},
		"strv.pool_max_class_bits": {Type: "int", Min: Int64(4), Max: Int64(30)},
		"log.level":                {Required: true},
	}

	result := cfg.Validate(rules)
	if result.Valid {
		t.Fatal("expected validation to fail")
	}
	if len(result.Errors) != 4 {
		t.Fatalf("got %d errors, want 4: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "log.level") {
		t.Errorf("errors should be sorted by key, first is %q", result.Errors[0])
	}

	verr := result.Err()
	var structured *mdwerror.Error
	if !errors.As(verr, &structured) || structured.Code() != mdwerror.CodeInvalidConfig {
		t.Errorf("Err() = %v, want INVALID_CONFIG", verr)
	}

	ok, _ := LoadFromString("[strv]\nallocator = \"POOL\"\n", FormatTOML)
	if res := ok.Validate(rules); len(res.Errors) != 1 {
		t.Errorf("only the missing log.level should fail, got %v", res.Errors)
	}
	if (&ValidationResult{Valid: true}).Err() != nil {
		t.Error("valid result should produce nil error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STRVTEST_STRV_ALLOCATOR", "pool")
	t.Setenv("STRVTEST_STRV_LIMIT_BYTES", "2048")
	t.Setenv("STRVTEST_LOG_LEVEL", "debug")
	t.Setenv("STRVTEST_CACHE_SIZE", "12")

	cfg := LoadFromEnv("strvtest")

	if got := cfg.GetString("strv.allocator"); got != "pool" {
		t.Errorf("strv.allocator = %q, want pool", got)
	}
	if got := cfg.GetInt64("strv.limit_bytes"); got != 2048 {
		t.Errorf("strv.limit_bytes = %d, want 2048", got)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if cfg.Source() != "env" {
		t.Errorf("Source() = %q, want env", cfg.Source())
	}

	filtered := LoadFromEnv("strvtest", "strv", "log")
	want := "log.level,strv.allocator,strv.limit_bytes"
	if got := strings.Join(filtered.Keys(), ","); got != want {
		t.Errorf("Keys() = %s, want %s", got, want)
	}
}
