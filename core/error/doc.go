// Package error provides structured error values for the strv foundation.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type carrying a code, a severity, the failing
//              operation, free-form details and a captured stack trace. Errors
//              remain compatible with the standard error interface, errors.Is
//              and errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Code set reduced to the string value library, code-based Is
//
// Usage:
//
//	import mdwerror "github.com/msto63/strv/core/error"
//
//	err := mdwerror.New("allocation failed").
//		WithCode(mdwerror.CodeAllocationFailed).
//		WithOperation("strv.Copy").
//		WithDetail("size", 4096)
//
//	if mdwerror.HasCode(err, mdwerror.CodeAllocationFailed) {
//		// retry after releasing memory elsewhere
//	}
package error
