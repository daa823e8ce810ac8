// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides decimal-safe arithmetic over float64,
//              a chainable engine built on it and loan repayment schedules.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with decimal-safe operations
// - 2026-10-19 v0.2.0: Chain engine and shared instance
// - 2026-10-19 v0.3.0: Loan schedules

// Package mathx provides decimal-safe arithmetic for float64 values.
//
// Package: mathx
// Title: Decimal-Safe Arithmetic
// Description: Binary floating point cannot represent most decimal
//              fractions, so 0.1 + 0.2 yields 0.30000000000000004. The
//              operations in this package scale fractional operands to
//              integers using the digits of their shortest text form,
//              operate, and scale back.
//
// Stateless Operations
//
// Adds, Subs, Muls, Divs and Pows take any number of operands and fold them
// left to right:
//
//	mathx.Adds(0.1, 0.2)    // 0.3
//	mathx.Subs(10, 2, 3)    // 5
//	mathx.Divs(100, 2, 5)   // 10
//	mathx.Pows(2, 3.9)      // 8, the exponent is floored
//
// With a single operand they return it, and with none (or a zero or NaN
// operand) they return 0, or 1 for Pows. No operation reports an error:
// non-finite input propagates as NaN or ±Inf.
//
// Chain Engine
//
// An Engine in chain mode feeds every result into the next operation:
//
//	e := mathx.New(true)
//	e.Base(64).Div(2).Add(2).Done() // 34
//
// In plain mode the same calls are stateless and return numbers wrapped in
// a Value. Shared returns one process-wide engine; ResetChain makes it
// forget the in-progress chain on access.
//
// Loan Schedules
//
// Loan computes monthly plans for interest-first, flat, equal-principal and
// annuity repayments:
//
//	result, err := mathx.Loan(mathx.EqualInstalment, mathx.LoanOptions{
//		Amount: 12000, YearRate: 12, Months: 12,
//	})
package mathx
