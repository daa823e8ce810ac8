// File: standards.go
// Title: Error Standards for pinkmath
// Description: Module identifiers, default code selection per module
//              operation and helpers for analysing standardized errors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Codes now come from the core error package

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx  = "mathx"
	ModuleLoan   = "loan"
	ModuleConfig = "config"
	ModuleCalc   = "calc"
	ModuleCLI    = "cli"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Build()
}

// ModuleError wraps cause with module context and extra details
func ModuleError(module, operation string, cause error, details map[string]interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s failed", module, operation)).
		Cause(cause).
		Details(details).
		Severity(getSeverityFromError(cause)).
		Build()
}

// getModuleErrorCode returns the code used when a builder has none set
func getModuleErrorCode(module, operation string) mdwerror.Code {
	switch module {
	case ModuleMathx, ModuleCalc:
		return getMathxErrorCode(operation)
	case ModuleLoan:
		return getLoanErrorCode(operation)
	case ModuleConfig:
		return getConfigErrorCode(operation)
	default:
		return mdwerror.CodeUnknown
	}
}

func getMathxErrorCode(operation string) mdwerror.Code {
	switch {
	case strings.Contains(operation, "op"):
		return mdwerror.CodeInvalidOperation
	case strings.Contains(operation, "parse") || strings.Contains(operation, "number"):
		return mdwerror.CodeInvalidNumber
	default:
		return mdwerror.CodeInvalidInput
	}
}

func getLoanErrorCode(operation string) mdwerror.Code {
	switch {
	case strings.Contains(operation, "rate"):
		return mdwerror.CodeMissingRate
	case strings.Contains(operation, "method"):
		return mdwerror.CodeInvalidOperation
	default:
		return mdwerror.CodeInvalidInput
	}
}

func getConfigErrorCode(operation string) mdwerror.Code {
	switch {
	case strings.Contains(operation, "env"):
		return mdwerror.CodeEnvironmentError
	case strings.Contains(operation, "validate"):
		return mdwerror.CodeInvalidConfig
	default:
		return mdwerror.CodeConfigError
	}
}

// getSeverityFromError determines appropriate severity based on error type
func getSeverityFromError(cause error) mdwerror.Severity {
	if cause == nil {
		return mdwerror.SeverityLow
	}

	if mdwErr, ok := cause.(*mdwerror.Error); ok {
		return mdwErr.Severity()
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "permission") || strings.Contains(errStr, "access"):
		return mdwerror.SeverityHigh
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "syntax"):
		return mdwerror.SeverityLow
	default:
		return mdwerror.SeverityMedium
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module && module != ""
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		if mod, ok := mdwErr.Details()["module"].(string); ok {
			return mod
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Operation()
	}
	return ""
}
