// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              foundation packages. Codes are stable strings so they survive
//              serialization into logs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Replaced service codes with memory ownership codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Memory and ownership
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeDoubleFree       Code = "DOUBLE_FREE"
	CodeUseAfterFree     Code = "USE_AFTER_FREE"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsMemoryError reports whether the code belongs to the allocation/ownership group
func (c Code) IsMemoryError() bool {
	switch c {
	case CodeAllocationFailed, CodeDoubleFree, CodeUseAfterFree:
		return true
	default:
		return false
	}
}

// IsContractViolation reports whether the code describes a caller bug rather
// than a recoverable condition
func (c Code) IsContractViolation() bool {
	return c == CodeDoubleFree || c == CodeUseAfterFree || c == CodeInvalidOperation
}

// AllCodes returns every defined code
func AllCodes() []Code {
	return []Code{
		CodeUnknown,
		CodeInternal,
		CodeNotFound,
		CodeInvalidInput,
		CodeAllocationFailed,
		CodeDoubleFree,
		CodeUseAfterFree,
		CodeInvalidOperation,
		CodeConfigError,
		CodeInvalidConfig,
		CodeValidationFailed,
		CodeInvalidFormat,
		CodeValueOutOfRange,
	}
}
