// Package errors provides the standard error constructors for pinkmath.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Common error patterns and helpers that build structured
//              errors from the core error package with module context.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Calculation and loan helpers
//
// # Error Creation
//
// Every constructor records the module in the error details and the failing
// operation on the error itself, so callers can route on either:
//
//	err := errors.MathxUnknownOperation("mod")
//	errors.IsModuleError(err, errors.ModuleMathx) // true
//	mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) // true
//
// The builder picks a default code from the module and operation names when
// none is given, and the severity follows the code unless set explicitly:
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load").
//		Cause(ioErr).
//		Build() // CONFIG_ERROR, high severity
package errors
