package calc

import (
	"strconv"
	"strings"

	"github.com/msto63/pinkmath/foundation/core/errors"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
)

// step is one operation of an expression with its explicit operands
type step struct {
	op   mathx.Op
	args []float64
}

// expression is a parsed line: an optional seed followed by operations
type expression struct {
	seed  *float64
	steps []step
}

// ParseNumber parses a single operand
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, errors.MathxInvalidNumber(s)
	}
	return v, nil
}

// ParseOperands parses every operand or fails on the first bad one
func ParseOperands(args []string) ([]float64, error) {
	nums := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := ParseNumber(a)
		if err != nil {
			return nil, err
		}
		nums = append(nums, v)
	}
	return nums, nil
}

// Apply runs a stateless operation given by name on textual operands
func Apply(name string, operands []string) (float64, error) {
	op, err := mathx.ParseOp(name)
	if err != nil {
		return 0, err
	}
	nums, err := ParseOperands(operands)
	if err != nil {
		return 0, err
	}
	return op.Apply(nums...), nil
}

// parseExpression reads "[base] N op a b op c ..." or "op a b ...".
// After an operation any token that is neither a number nor an operation
// is reported as an invalid number.
func parseExpression(tokens []string) (expression, error) {
	var expr expression
	rest := tokens

	if len(rest) > 0 && strings.EqualFold(rest[0], "base") {
		if len(rest) < 2 {
			return expr, errors.InvalidInput(errors.ModuleCalc, "base", strings.Join(tokens, " "), "base <number>")
		}
		seed, err := ParseNumber(rest[1])
		if err != nil {
			return expr, err
		}
		expr.seed = &seed
		rest = rest[2:]
	} else if len(rest) > 0 {
		if seed, err := ParseNumber(rest[0]); err == nil {
			expr.seed = &seed
			rest = rest[1:]
		}
	}

	for len(rest) > 0 {
		op, err := mathx.ParseOp(rest[0])
		if err != nil {
			if _, numErr := ParseNumber(rest[0]); numErr == nil {
				return expr, errors.InvalidInput(errors.ModuleCalc, "parse_expression", rest[0], "an operation")
			}
			return expr, err
		}
		rest = rest[1:]

		s := step{op: op}
		for len(rest) > 0 {
			if _, opErr := mathx.ParseOp(rest[0]); opErr == nil {
				break
			}
			v, err := ParseNumber(rest[0])
			if err != nil {
				return expr, err
			}
			s.args = append(s.args, v)
			rest = rest[1:]
		}
		expr.steps = append(expr.steps, s)
	}

	return expr, nil
}
