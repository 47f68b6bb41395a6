// File: logger.go
// Title: Package Logger
// Description: Replaceable structured logger used for allocation failures
//              and settings changes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import (
	"sync/atomic"

	"github.com/msto63/strv/core/log"
)

var pkgLogger atomic.Pointer[log.Logger]

func init() {
	cfg := log.DefaultLoggerConfig("strv")
	cfg.Level = "warn"
	pkgLogger.Store(log.NewLogger(cfg))
}

// Logger returns the logger used by this package
func Logger() *log.Logger {
	return pkgLogger.Load()
}

// SetLogger replaces the package logger and returns the previous one.
// A nil logger is ignored.
func SetLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return pkgLogger.Load()
	}
	return pkgLogger.Swap(l)
}

func logAllocationFailure(err error) {
	Logger().LogError(err)
}
