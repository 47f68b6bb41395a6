// Package errors provides the standard error constructors used by every
// package of the strv module.
//
// Package: errors
// Title: Standard Error Handling API for strv
// Description: Module identifiers, an ErrorBuilder with a fluent interface, and
//              convenience constructors that produce *core/error.Error values
//              carrying the module and operation as details. Codes come from
//              the core error package so errors.Is works against sentinels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-15 v0.2.0: Reduced to the strv, config and log modules; typed codes
//
// Package Overview:
//
// # Error Creation
//
//   - NewErrorBuilder: fluent construction with automatic message generation
//   - InvalidInput, InvalidFormat, OutOfRange, NotFound, ValidationFailed:
//     generic module errors, each naming the module and operation
//   - StrvAllocationFailed, StrvDoubleFree, StrvUseAfterFree, StrvInvalidInput,
//     StrvInvalidOperation: value library errors
//   - ConfigInvalid, ConfigLoadFailed: configuration errors
//
// # Error Analysis
//
//   - ExtractModule, ExtractOperation: read the module and operation from the
//     first structured error in a wrap chain
//
// # Usage Examples
//
//	err := errors.StrvAllocationFailed("strv.Copy", 4096, cause)
//	if errors.ExtractModule(err) == errors.ModuleStrv {
//		// ...
//	}
//
//	err = errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load").
//		Messagef("unsupported format %q", ext).
//		Code(mdwerror.CodeInvalidFormat).
//		Build()
package errors
