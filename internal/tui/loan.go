package tui

import (
	"strconv"
	"strings"

	"github.com/msto63/pinkmath/foundation/core/errors"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
	"github.com/msto63/pinkmath/internal/calc"
)

// LoanDefaults fill the parts of a loan line the user leaves out
type LoanDefaults struct {
	Method mathx.LoanMethod
	Months int
}

// parseLoanLine reads "<amount> <rate> [months] [method]". A rate with a
// trailing "d" is a day rate, otherwise a year rate in percent.
func parseLoanLine(line string, defaults LoanDefaults) (mathx.LoanMethod, mathx.LoanOptions, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 4 {
		return "", mathx.LoanOptions{}, errors.InvalidInput(errors.ModuleLoan, "parse_line", line, "<amount> <rate>[d] [months] [method]")
	}

	opts := mathx.LoanOptions{Months: defaults.Months}
	method := defaults.Method

	amount, err := calc.ParseNumber(fields[0])
	if err != nil {
		return "", opts, err
	}
	opts.Amount = amount

	rate := fields[1]
	isDayRate := strings.HasSuffix(strings.ToLower(rate), "d")
	if isDayRate {
		rate = rate[:len(rate)-1]
	}
	r, err := calc.ParseNumber(rate)
	if err != nil {
		return "", opts, err
	}
	if isDayRate {
		opts.DayRate = r
	} else {
		opts.YearRate = r
	}

	for _, f := range fields[2:] {
		if n, err := strconv.Atoi(f); err == nil {
			opts.Months = n
			continue
		}
		m, err := mathx.ParseLoanMethod(f)
		if err != nil {
			return "", opts, err
		}
		method = m
	}

	return method, opts, nil
}
