// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages including JSON, text,
//              console and logfmt formats.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-15 v0.2.0: Deterministic field order in text and logfmt output
// - 2026-10-15 v0.3.0: Console shares the text layout; formatters unexported

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/msto63/strv/core/errors"
)

// Format represents the output format for log messages
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

// String returns the name accepted by ParseFormat
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name, ignoring case. Unknown names yield
// FormatJSON and an INVALID_INPUT error.
func ParseFormat(format string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(format))
	for f, name := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}
	return FormatJSON, errors.InvalidInput(errors.ModuleLog, "ParseFormat", format, "json, text, console or logfmt")
}

// Formatter renders one entry as a complete output line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for format, JSON for unknown values
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return textFormatter{}
	case FormatConsole:
		return textFormatter{color: true}
	case FormatLogfmt:
		return logfmtFormatter{}
	default:
		return jsonFormatter{}
	}
}

type jsonFormatter struct{}

func (jsonFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		data[k] = v
	}
	data["timestamp"] = entry.Time.Format(time.RFC3339)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Err != nil {
		data["error"] = entry.Err.Error()
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// textFormatter writes "15:04:05 [WRN] {name} (cid=id) message [k=v ...]".
// With color set the whole line is wrapped in the level's ANSI color.
type textFormatter struct {
	color bool
}

func (f textFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder
	if f.color {
		sb.WriteString(entry.Level.names().color)
	}
	sb.WriteString(entry.Time.Format("15:04:05"))
	fmt.Fprintf(&sb, " [%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&sb, " {%s}", entry.Logger)
	}
	if entry.CorrelationID != "" {
		fmt.Fprintf(&sb, " (cid=%s)", entry.CorrelationID)
	}
	sb.WriteString(" " + entry.Message)

	if len(entry.Fields) > 0 {
		sb.WriteString(" [")
		for i, k := range entry.Fields.sortedKeys() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s=%v", k, entry.Fields[k])
		}
		sb.WriteByte(']')
	}
	if entry.Err != nil {
		fmt.Fprintf(&sb, " error=%q", entry.Err.Error())
	}
	if f.color {
		sb.WriteString("\033[0m")
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

type logfmtFormatter struct{}

func (logfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "timestamp=%s level=%s message=%q",
		entry.Time.Format(time.RFC3339), entry.Level, entry.Message)
	if entry.Logger != "" {
		fmt.Fprintf(&sb, " logger=%s", entry.Logger)
	}
	if entry.CorrelationID != "" {
		fmt.Fprintf(&sb, " correlation_id=%s", entry.CorrelationID)
	}
	for _, k := range entry.Fields.sortedKeys() {
		if s, ok := entry.Fields[k].(string); ok {
			fmt.Fprintf(&sb, " %s=%q", k, s)
		} else {
			fmt.Fprintf(&sb, " %s=%v", k, entry.Fields[k])
		}
	}
	if entry.Err != nil {
		fmt.Fprintf(&sb, " error=%q", entry.Err.Error())
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
