// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure that holds all information
//              about a single log message.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-15 v0.2.0: Dropped request/user ids and durations; added SortedKeys
// - 2026-10-15 v0.3.0: Dropped caller info and field helpers

package log

import (
	"sort"
	"time"
)

// Entry is a single log line before formatting
type Entry struct {
	Time          time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Err           error
}

// Fields holds the structured key-value pairs of an entry
type Fields map[string]interface{}

// sortedKeys returns the field names in lexical order so text output is
// stable between runs.
func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
