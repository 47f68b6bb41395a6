// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the ErrorBuilder and the standard constructors used
//              across the strv module for consistent error patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-15 v0.2.0: Typed codes; severity follows the code unless set;
//                       constructors take the operation; extractors follow
//                       the wrap chain

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/strv/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity. Without it the severity is derived from
// the code.
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeInternal
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	severity := mdwerror.GetSeverityFromCode(eb.code)
	if eb.severitySet {
		severity = eb.severity
	}

	return err.
		WithCode(eb.code).
		WithSeverity(severity).
		WithOperation(eb.operation).
		WithDetails(eb.details)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports input that could not be parsed as format. The parser
// error is kept as the cause.
func InvalidFormat(module, operation, source, format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("cannot parse %s as %s", source, format).
		Cause(cause).
		Code(mdwerror.CodeInvalidFormat).
		Detail("source", source).
		Detail("format", format).
		Build()
}

// ValidationFailed reports a field whose value was rejected for reason
func ValidationFailed(module, operation, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed for %s: %s", field, reason).
		Code(mdwerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// OutOfRange reports a numeric field outside [min, max]
func OutOfRange(module, operation, field string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s = %v is out of range [%v, %v]", field, value, min, max).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("field", field).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound reports a missing item such as a configuration file
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ExtractModule returns the module recorded on the first structured error in
// the chain of err, or "" if there is none.
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation returns the operation recorded on the first structured
// error in the chain of err.
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

func detailString(err error, key string) string {
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		return ""
	}
	s, _ := mdwErr.Details()[key].(string)
	return s
}
