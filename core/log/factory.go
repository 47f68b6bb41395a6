// File: factory.go
// Title: Logger Factory
// Description: Builds configured loggers from string settings as they appear in
//              configuration files. Every logger gets a fresh correlation id so
//              lines from separate instances can be told apart.
// Author: msto63
// Version: v0.3.0
// Created: 2025-12-06
// Modified: 2026-10-15
//
// Change History:
// - 2025-12-06 v0.1.0: Initial factory with remote log shipping
// - 2026-10-15 v0.2.0: Moved into core/log; uuid correlation ids, no remote sink
// - 2026-10-15 v0.3.0: Dropped extra outputs and async delivery

package log

import (
	"io"

	"github.com/google/uuid"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	Name          string
	Level         string    // trace, debug, info, warn, error or fatal
	Format        string    // json, text, console or logfmt
	CorrelationID string    // generated when empty
	Output        io.Writer // nil means stderr
}

// DefaultLoggerConfig returns an info level JSON configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "json",
	}
}

// NewLogger creates a logger from cfg. Unknown level or format strings fall
// back to info and json.
func NewLogger(cfg LoggerConfig) *Logger {
	level, _ := ParseLevel(cfg.Level)
	format, _ := ParseFormat(cfg.Format)

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	return NewWithConfig(Config{
		Level:         level,
		Format:        format,
		Output:        cfg.Output,
		Name:          cfg.Name,
		CorrelationID: correlationID,
	})
}
