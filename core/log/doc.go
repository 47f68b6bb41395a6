// Package log provides structured logging for the strv module.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements structured logging with per-call
//              fields, four output formats, level filtering and integration
//              with the core error package. A small factory builds configured
//              loggers stamped with a correlation id.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Factory with uuid correlation ids, sorted text fields
// - 2026-10-15 v0.3.0: Synchronous writes only; LogError reads module and
//                       operation through the wrap chain
//
// Features:
// - Structured logging with JSON, text, console and logfmt formats
// - Level filtering from trace to fatal
// - Correlation ids stamped on every entry
// - LogError maps error severity to log level and adds error_code,
//   error_module and error_operation fields
//
// Usage:
//
//	import mdwlog "github.com/msto63/strv/core/log"
//
//	logger := mdwlog.NewLogger(mdwlog.LoggerConfig{
//		Name:   "strv",
//		Level:  "debug",
//		Format: "logfmt",
//	})
//
//	logger.Warn("allocation failed", mdwlog.Fields{
//		"operation": "strv.Copy",
//		"size":      4096,
//	})
//	logger.LogError(err)
package log
