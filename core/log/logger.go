// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with per-call fields, pluggable formats and integration with
//              the core error package.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: Close waits for the async worker to drain; writes
//                       serialized per output
// - 2026-10-15 v0.3.0: Synchronous only; LogError follows wrap chains and
//                       records module and operation

package log

import (
	stderrors "errors"
	"io"
	"os"
	"sync"
	"time"

	mdwerror "github.com/msto63/strv/core/error"
	"github.com/msto63/strv/core/errors"
)

// Logger writes structured entries at or above its level to one output.
// It is safe for concurrent use; lines never interleave.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	correlationID string

	mu sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level         Level
	Format        Format
	Output        io.Writer // nil means stderr
	Name          string
	CorrelationID string
}

// NewWithConfig creates a logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        output,
		name:          config.Name,
		correlationID: config.CorrelationID,
	}
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields)
}

// LogError logs err at a level derived from its severity. The first
// structured error in the wrap chain supplies the message and contributes its
// code, module, operation and details as error_* fields.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), nil, fields)
		return
	}

	errFields := Fields{
		"error_code":     mdwErr.Code(),
		"error_severity": mdwErr.Severity().String(),
	}
	for k, v := range mdwErr.Details() {
		if k != "module" && k != "operation" {
			errFields["error_"+k] = v
		}
	}
	if module := errors.ExtractModule(err); module != "" {
		errFields["error_module"] = module
	}
	if op := errors.ExtractOperation(err); op != "" {
		errFields["error_operation"] = op
	}

	level := LevelError
	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, mdwErr.Message(), err, append([]Fields{errFields}, fields...))
}

// GetLevel returns the minimum level that is written
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// CorrelationID returns the id stamped on every entry
func (l *Logger) CorrelationID() string {
	return l.correlationID
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := &Entry{
		Time:          time.Now(),
		Level:         level,
		Message:       message,
		Logger:        l.name,
		CorrelationID: l.correlationID,
		Fields:        make(Fields),
		Err:           err,
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	line, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.mu.Lock()
	_, _ = l.output.Write(line)
	l.mu.Unlock()
}
