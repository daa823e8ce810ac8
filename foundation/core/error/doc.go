// Package error provides the structured error type of pinkmath.
//
// An Error carries a Code, a Severity, free-form details and the operation
// that failed. Errors wrap causes and work with the standard library's
// errors.Is and errors.As through Unwrap.
//
//	err := mdwerror.New("unknown operation").
//	    WithCode(mdwerror.CodeInvalidOperation).
//	    WithOperation("mathx.ParseOp").
//	    WithDetail("input", "mod")
//
// Most callers build errors through the helpers of package
// foundation/core/errors instead of using this package directly.
package error
