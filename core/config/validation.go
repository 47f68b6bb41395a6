// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, value types, integer bounds and enumerations.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-15 v0.2.0: Read-only validation, OneOf rule, Err helper; removed
//                       struct binding and regex patterns
// - 2026-10-15 v0.3.0: Field failures use the standard error constructors;
//                       only string and int rules remain

package config

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/strv/core/error"
	"github.com/msto63/strv/core/errors"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string" or "int"; empty accepts anything
	Min      *int64   // Lower bound for "int"
	Max      *int64   // Upper bound for "int"
	OneOf    []string // Allowed values for "string", compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into an error with code INVALID_CONFIG
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("validate").
		Message("configuration validation failed: " + strings.Join(r.Errors, "; ")).
		Code(mdwerror.CodeInvalidConfig).
		Detail("errors", append([]string(nil), r.Errors...)).
		Build()
}

// Int64 returns a pointer to v for use in ValidationRule bounds
func Int64(v int64) *int64 {
	return &v
}

// Validate checks the configuration against rules. Environment overrides take
// part in validation the same way they do in the getters. Errors are reported
// in key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value, fromEnv := c.lookup(key)
	if fromEnv {
		value = parseEnvValue(value.(string))
	}

	if value == nil {
		if rule.Required {
			return fieldError(key, nil, "is required")
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		s, ok := value.(string)
		if !ok {
			return fieldError(key, value, fmt.Sprintf("must be a string, got %T", value))
		}
		if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, s) {
			return fieldError(key, s, "must be one of ["+strings.Join(rule.OneOf, ", ")+"]")
		}
	case "int":
		n, ok := toInt64(value)
		if !ok {
			return fieldError(key, value, fmt.Sprintf("must be an integer, got %T", value))
		}
		if (rule.Min != nil && n < *rule.Min) || (rule.Max != nil && n > *rule.Max) {
			return errors.OutOfRange(errors.ModuleConfig, "validate", key, n, bound(rule.Min, "-inf"), bound(rule.Max, "+inf"))
		}
	default:
		return fieldError(key, value, "has unknown rule type "+rule.Type)
	}
	return nil
}

func fieldError(key string, value interface{}, reason string) error {
	return errors.ValidationFailed(errors.ModuleConfig, "validate", key, value, reason)
}

func bound(p *int64, open string) interface{} {
	if p == nil {
		return open
	}
	return *p
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
