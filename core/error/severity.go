// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to rank errors and to pick the log
//              level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-15 v0.2.0: Code mapping follows the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, usually bad input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error the caller can recover from
	SeverityMedium

	// SeverityHigh indicates a serious error such as exhausted memory
	SeverityHigh

	// SeverityCritical indicates a broken invariant; continuing is unsafe
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDoubleFree, CodeUseAfterFree:
		return SeverityCritical

	case CodeAllocationFailed, CodeInternal:
		return SeverityHigh

	case CodeInvalidOperation, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
