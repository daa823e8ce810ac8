// File: number.go
// Title: Number Formatting and Decimal Helpers
// Description: String forms of float64 operands as used by the decimal-safe
//              operations: shortest round-trip text, fractional digit counts,
//              point-stripped parsing and fixed-point rounding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"sync"
)

// noFraction is the fractional digit count used for operands whose text has
// no decimal point: integers, NaN, the infinities and exponent forms such as
// "1e+21".
const noFraction = 0

// maxFixedDigits bounds the digits accepted by ToFixed.
const maxFixedDigits = 100

// exactPow10 is the largest |n| for which math.Pow10(n) is correctly rounded.
// Beyond it math.Pow10 multiplies two table entries and may be off by one ulp.
const exactPow10 = 22

// exponent thresholds outside of which FormatNumber switches to e-notation
const (
	plainUpper = 1e21
	plainLower = 1e-6
)

var (
	ratPool = sync.Pool{
		New: func() interface{} {
			return new(big.Rat)
		},
	}

	ratHalf = big.NewRat(1, 2)
)

func getRat() *big.Rat {
	r := ratPool.Get().(*big.Rat)
	r.SetInt64(0)
	return r
}

func putRat(r *big.Rat) {
	if r != nil {
		ratPool.Put(r)
	}
}

// FormatNumber returns the shortest text that parses back to x. Values with
// 1e-6 <= |x| < 1e21 are written in plain notation, others as mantissa and
// signed exponent ("1.5e-7", "1e+21"). Zero is "0" regardless of sign.
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs >= plainLower && abs < plainUpper {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1.5e-07")
	mant, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + exp[:1] + digits
}

// fractionDigits counts the characters after the first decimal point of the
// text form of x. For "1.5e-7" that is "5e-7", four characters.
func fractionDigits(x float64) int {
	_, frac, ok := strings.Cut(FormatNumber(x), ".")
	if !ok {
		return noFraction
	}
	return len(frac)
}

// stripped parses the text form of x with its decimal point removed, so 1.25
// becomes 125 and 1.5e-7 becomes 15e-7.
func stripped(x float64) float64 {
	return parseNumber(strings.Replace(FormatNumber(x), ".", "", 1))
}

// pow10 returns the float64 nearest to 10**n.
func pow10(n int) float64 {
	if n >= -exactPow10 && n <= exactPow10 {
		return math.Pow10(n)
	}
	return parseNumber("1e" + strconv.Itoa(n))
}

// parseNumber converts text back to a number. Out of range input saturates
// to ±Inf or 0; anything unparsable is NaN.
func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f
	}
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return f
	}
	return math.NaN()
}

// ToFixed formats x with exactly digits fractional digits. The exact binary
// value of x is rounded half away from zero, so ToFixed(1.005, 2) is "1.00"
// because 1.005 is stored as 1.00499999999999989....
// NaN, the infinities and |x| >= 1e21 fall back to FormatNumber. A negative
// value that rounds to zero keeps its sign ("-0.00").
func ToFixed(x float64, digits int) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	if math.IsInf(x, 0) || math.Abs(x) >= plainUpper {
		return FormatNumber(x)
	}

	if digits < 0 {
		digits = 0
	} else if digits > maxFixedDigits {
		digits = maxFixedDigits
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	r := getRat()
	defer putRat(r)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	r.SetFloat64(x)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, ratHalf)

	s := new(big.Int).Quo(r.Num(), r.Denom()).String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	return sign + s
}

// Round returns x rounded to digits fractional digits with ToFixed rules.
func Round(x float64, digits int) float64 {
	return parseNumber(ToFixed(x, digits))
}
