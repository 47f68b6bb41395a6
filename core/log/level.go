// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-15 v0.2.0: Removed the audit level
// - 2026-10-15 v0.3.0: Table driven names; parse failures are standard errors

package log

import (
	"strings"

	"github.com/msto63/strv/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

type levelNames struct {
	name    string
	short   string
	color   string // ANSI escape for console output
	aliases []string
}

var levels = [...]levelNames{
	LevelTrace: {"trace", "TRC", "\033[37m", nil},
	LevelDebug: {"debug", "DBG", "\033[36m", nil},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"warning"}},
	LevelError: {"error", "ERR", "\033[31m", nil},
	LevelFatal: {"fatal", "FTL", "\033[35m", nil},
}

func (l Level) names() levelNames {
	if l < 0 || int(l) >= len(levels) {
		return levelNames{name: "unknown", short: "???", color: "\033[0m"}
	}
	return levels[l]
}

// String returns the lower case name of the level
func (l Level) String() string { return l.names().name }

// ShortString returns the three letter tag used by the text formats
func (l Level) ShortString() string { return l.names().short }

// ShouldLog reports whether l passes the threshold minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its three letter tag or a common alias,
// ignoring case and surrounding space. Unknown input yields LevelInfo and an
// INVALID_INPUT error.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levels {
		if s == n.name || s == strings.ToLower(n.short) {
			return Level(l), nil
		}
		for _, alias := range n.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, errors.InvalidInput(errors.ModuleLog, "ParseLevel", level, "trace, debug, info, warn, error or fatal")
}
