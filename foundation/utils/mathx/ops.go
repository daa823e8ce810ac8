// File: ops.go
// Title: Decimal-Safe Arithmetic
// Description: Stateless add, subtract, multiply, divide and integer power
//              over variadic float64 operands. Fractional operands are scaled
//              to integers before the operation and scaled back afterwards.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Correctly rounded powers of ten for long fractions

package mathx

import (
	"math"
)

// maxExponent is the largest exponent Pows accepts.
const maxExponent = math.MaxUint32

// single handles the zero and one operand case shared by all operations:
// the operand itself unless it is absent, zero or NaN, in which case
// fallback is returned.
func single(args []float64, fallback float64) float64 {
	if len(args) == 0 || args[0] == 0 || math.IsNaN(args[0]) {
		return fallback
	}
	return args[0]
}

// fold combines args left to right with pair.
func fold(args []float64, pair func(a, b float64) float64) float64 {
	result := pair(args[0], args[1])
	for _, next := range args[2:] {
		result = pair(result, next)
	}
	return result
}

// Adds returns the decimal-safe sum of args, folded left to right.
// Adds(0.1, 0.2) is 0.3.
func Adds(args ...float64) float64 {
	if len(args) <= 1 {
		return single(args, 0)
	}
	return fold(args, addPair)
}

func addPair(a, b float64) float64 {
	m := pow10(max(fractionDigits(a), fractionDigits(b)))
	return (a*m + b*m) / m
}

// Subs returns the decimal-safe difference of args, folded left to right:
// Subs(10, 2, 3) is (10-2)-3. Each step is rounded to the larger fractional
// digit count of its two operands.
func Subs(args ...float64) float64 {
	if len(args) <= 1 {
		return single(args, 0)
	}
	return fold(args, subPair)
}

func subPair(a, b float64) float64 {
	digits := max(fractionDigits(a), fractionDigits(b))
	m := pow10(digits)
	return Round((a*m-b*m)/m, digits)
}

// Muls returns the decimal-safe product of args, folded left to right.
// Muls(0.1, 0.2) is 0.02.
func Muls(args ...float64) float64 {
	if len(args) <= 1 {
		return single(args, 0)
	}
	return fold(args, mulPair)
}

func mulPair(a, b float64) float64 {
	m := fractionDigits(a) + fractionDigits(b)
	return stripped(a) * stripped(b) / pow10(m)
}

// Divs returns the decimal-safe quotient of args, folded left to right:
// Divs(100, 2, 5) is (100/2)/5. Division by zero yields ±Inf or NaN.
func Divs(args ...float64) float64 {
	if len(args) <= 1 {
		return single(args, 0)
	}
	return fold(args, divPair)
}

func divPair(a, b float64) float64 {
	shift := fractionDigits(b) - fractionDigits(a)
	return Muls(stripped(a)/stripped(b), pow10(shift))
}

// Pows raises args[0] to the floor of args[1] by repeated decimal-safe
// multiplication, then multiplies any further operands in. With fewer than
// two operands it returns the operand, or 1 when it is absent, zero or NaN.
// Negative, NaN, infinite and exponents above 2^32-1 give NaN.
func Pows(args ...float64) float64 {
	if len(args) <= 1 {
		return single(args, 1)
	}

	result := power(args[0], math.Floor(args[1]))
	if len(args) > 2 {
		return Muls(append([]float64{result}, args[2:]...)...)
	}
	return result
}

func power(base, exp float64) float64 {
	switch {
	case math.IsNaN(exp) || exp < 0 || exp > maxExponent:
		return math.NaN()
	case exp == 0:
		return 1
	case exp == 1:
		return Muls(base)
	}

	result := base
	for i := uint64(1); i < uint64(exp); i++ {
		next := Muls(result, base)
		// Muls depends only on the operand values, so a product that stops
		// changing (1, 0, ±Inf) or turns NaN is final
		if next == result || math.IsNaN(next) {
			return next
		}
		result = next
	}
	return result
}
