// File: standards.go
// Title: Module Error Standards
// Description: Module identifiers and module-specific convenience constructors
//              for the value library, the configuration loader and the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-15 v0.2.0: Ownership and allocation errors for strv

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/strv/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStrv   = "strv"
	ModuleConfig = "config"
	ModuleLog    = "log"
)

// StrvAllocationFailed reports that an allocator could not provide size bytes.
// The target of the failed operation is left unchanged.
func StrvAllocationFailed(operation string, size int, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleStrv).
		Operation(operation).
		Messagef("allocation of %d bytes failed", size).
		Cause(cause).
		Code(mdwerror.CodeAllocationFailed).
		Detail("size", size).
		Build()
}

// StrvDoubleFree reports a second release of the same owned buffer
func StrvDoubleFree(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStrv).
		Operation(operation).
		Message("owned buffer released twice").
		Code(mdwerror.CodeDoubleFree).
		Build()
}

// StrvUseAfterFree reports a read through a value whose buffer was released
func StrvUseAfterFree(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStrv).
		Operation(operation).
		Message("read of a released buffer").
		Code(mdwerror.CodeUseAfterFree).
		Build()
}

// StrvInvalidInput reports a rejected argument of a strv operation
func StrvInvalidInput(operation string, input interface{}) *mdwerror.Error {
	return InvalidInput(ModuleStrv, operation, input, "valid value")
}

// StrvInvalidOperation reports an operation that is not allowed in the
// current state
func StrvInvalidOperation(operation, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStrv).
		Operation(operation).
		Messagef("%s: %s", operation, reason).
		Code(mdwerror.CodeInvalidOperation).
		Detail("reason", reason).
		Build()
}

// StrvDecodeFailed wraps a failure to decode a value from an encoded form
func StrvDecodeFailed(operation, format string, cause error) *mdwerror.Error {
	return InvalidFormat(ModuleStrv, operation, "value", format, cause)
}

// ConfigInvalid reports a configuration value that cannot be used
func ConfigInvalid(key string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message(fmt.Sprintf("invalid value for %s", key)).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// ConfigLoadFailed wraps a failure to read or parse a configuration source
func ConfigLoadFailed(source string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Message(fmt.Sprintf("failed to load configuration from %s", source)).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Detail("source", source).
		Build()
}
