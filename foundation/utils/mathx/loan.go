// File: loan.go
// Title: Loan Repayment Schedules
// Description: Monthly repayment plans for the four common loan methods,
//              computed with the decimal-safe operations of this package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package mathx

import (
	"strings"

	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
	"github.com/msto63/pinkmath/foundation/core/errors"
)

// LoanMethod identifies a repayment method by its short code.
type LoanMethod string

const (
	// InterestFirst pays interest monthly and the principal with the last
	// instalment (xxhb).
	InterestFirst LoanMethod = "xxhb"

	// EqualPrincipalEqualInterest pays equal principal plus a flat interest
	// computed on the original amount (dbdx).
	EqualPrincipalEqualInterest LoanMethod = "dbdx"

	// EqualPrincipal pays equal principal plus interest on the outstanding
	// balance, so instalments decrease (debj).
	EqualPrincipal LoanMethod = "debj"

	// EqualInstalment pays a constant annuity (debx).
	EqualInstalment LoanMethod = "debx"
)

var loanMethodNames = map[LoanMethod]string{
	InterestFirst:               "interest-first",
	EqualPrincipalEqualInterest: "equal-principal-equal-interest",
	EqualPrincipal:              "equal-principal",
	EqualInstalment:             "equal-instalment",
}

// LoanMethods returns all methods in a stable order.
func LoanMethods() []LoanMethod {
	return []LoanMethod{InterestFirst, EqualPrincipalEqualInterest, EqualPrincipal, EqualInstalment}
}

func (m LoanMethod) String() string {
	return string(m)
}

// Name returns the descriptive name, e.g. "equal-instalment".
func (m LoanMethod) Name() string {
	if name, ok := loanMethodNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseLoanMethod accepts a short code or a descriptive name.
func ParseLoanMethod(s string) (LoanMethod, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "equal-installment" {
		return EqualInstalment, nil
	}
	for _, m := range LoanMethods() {
		if key == string(m) || key == loanMethodNames[m] {
			return m, nil
		}
	}
	return "", errors.LoanUnknownMethod(s)
}

// LoanOptions describes a loan. Rates are percentages; when YearRate is zero
// it is derived from DayRate as DayRate*365. Zero Months means one month.
type LoanOptions struct {
	DayRate  float64 `json:"day_rate,omitempty" yaml:"day_rate,omitempty"`
	YearRate float64 `json:"year_rate,omitempty" yaml:"year_rate,omitempty"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Months   int     `json:"months" yaml:"months"`
}

// LoanPlan is one month of a schedule, rounded to cents.
type LoanPlan struct {
	Num           int     `json:"num"`
	Total         float64 `json:"total"`
	Interest      float64 `json:"interest"`
	Capital       float64 `json:"capital"`
	RemainingLoan float64 `json:"remaining_loan"`
}

// LoanInfo summarises a schedule in whole units. Monthly is the first
// (and highest) instalment.
type LoanInfo struct {
	Monthly        float64 `json:"monthly"`
	TotalRepayment float64 `json:"total_repayment"`
	TotalInterest  float64 `json:"total_interest"`
}

// LoanResult is a complete schedule.
type LoanResult struct {
	Method LoanMethod `json:"method"`
	Plan   []LoanPlan `json:"plan"`
	Info   LoanInfo   `json:"info"`
}

// MaxLoanMonths is the longest term a schedule is computed for (100 years).
const MaxLoanMonths = 1200

// remainder below which the outstanding balance is treated as paid off
const settledBalance = 1

// Loan computes the schedule for method.
func Loan(method LoanMethod, opts LoanOptions) (*LoanResult, error) {
	var build func(loanTerms) ([]LoanPlan, LoanInfo)
	switch method {
	case InterestFirst:
		build = interestFirst
	case EqualPrincipalEqualInterest:
		build = equalPrincipalEqualInterest
	case EqualPrincipal:
		build = equalPrincipal
	case EqualInstalment:
		build = equalInstalment
	default:
		return nil, errors.LoanUnknownMethod(string(method))
	}

	terms, err := newLoanTerms(opts)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid loan options").
			WithDetail("method", string(method))
	}

	plan, info := build(terms)
	return &LoanResult{Method: method, Plan: plan, Info: info}, nil
}

type loanTerms struct {
	amount   float64
	yearRate float64
	months   int
}

func newLoanTerms(opts LoanOptions) (loanTerms, error) {
	if opts.DayRate == 0 && opts.YearRate == 0 {
		return loanTerms{}, errors.LoanMissingRate()
	}
	if !(opts.DayRate >= 0) {
		return loanTerms{}, errors.OutOfRange(errors.ModuleLoan, "day_rate", opts.DayRate, 0, nil)
	}
	if !(opts.YearRate >= 0) {
		return loanTerms{}, errors.OutOfRange(errors.ModuleLoan, "year_rate", opts.YearRate, 0, nil)
	}
	if !(opts.Amount >= 0) {
		return loanTerms{}, errors.OutOfRange(errors.ModuleLoan, "amount", opts.Amount, 0, nil)
	}
	if err := errors.ValidateRange(errors.ModuleLoan, "months", opts.Months, 0, MaxLoanMonths); err != nil {
		return loanTerms{}, err
	}

	t := loanTerms{amount: opts.Amount, yearRate: opts.YearRate, months: opts.Months}
	if t.yearRate == 0 {
		t.yearRate = Muls(opts.DayRate, 365)
	}
	if t.months == 0 {
		t.months = 1
	}
	return t, nil
}

// monthlyRate is the monthly interest as a fraction, yearRate/12/100.
func (t loanTerms) monthlyRate() float64 {
	return Divs(t.yearRate, 1200)
}

// flatInterest is the monthly interest on the full amount.
func (t loanTerms) flatInterest() float64 {
	total := Muls(Divs(Muls(t.amount, t.yearRate), 12), 0.01, float64(t.months))
	return Divs(total, float64(t.months))
}

func cents(x float64) float64 {
	return Round(x, 2)
}

func whole(x float64) float64 {
	return Round(x, 0)
}

func interestFirst(t loanTerms) ([]LoanPlan, LoanInfo) {
	interest := t.flatInterest()
	plan := make([]LoanPlan, t.months)
	paid := 0.0

	for i := 1; i <= t.months; i++ {
		row := LoanPlan{
			Num:           i,
			Total:         cents(interest),
			Interest:      cents(interest),
			RemainingLoan: cents(t.amount),
		}
		if i == t.months {
			row.Total = cents(Adds(interest, t.amount))
			row.Capital = cents(t.amount)
			row.RemainingLoan = 0
		}
		plan[i-1] = row
		paid = Adds(paid, row.Total)
	}

	totalRepayment := cents(paid)
	return plan, LoanInfo{
		Monthly:        whole(plan[0].Total),
		TotalRepayment: whole(totalRepayment),
		TotalInterest:  whole(Subs(totalRepayment, t.amount)),
	}
}

func equalPrincipalEqualInterest(t loanTerms) ([]LoanPlan, LoanInfo) {
	interest := t.flatInterest()
	capital := Divs(t.amount, float64(t.months))
	total := Adds(capital, interest)
	plan := make([]LoanPlan, t.months)
	paid := 0.0

	for i := 1; i <= t.months; i++ {
		plan[i-1] = LoanPlan{
			Num:           i,
			Total:         cents(total),
			Interest:      cents(interest),
			Capital:       cents(capital),
			RemainingLoan: cents(Subs(t.amount, Muls(capital, float64(i)))),
		}
		paid = Adds(paid, total)
	}

	totalRepayment := cents(paid)
	return plan, LoanInfo{
		Monthly:        whole(plan[0].Total),
		TotalRepayment: whole(totalRepayment),
		TotalInterest:  whole(Subs(totalRepayment, t.amount)),
	}
}

func equalPrincipal(t loanTerms) ([]LoanPlan, LoanInfo) {
	rate := t.monthlyRate()
	months := float64(t.months)
	capital := Divs(t.amount, months)
	plan := make([]LoanPlan, t.months)
	paid := 0.0

	for i := 1; i <= t.months; i++ {
		repaid := Divs(Muls(t.amount, float64(i-1)), months)
		interest := Muls(Subs(t.amount, repaid), rate)
		total := Adds(capital, interest)

		row := LoanPlan{
			Num:           i,
			Total:         cents(total),
			Interest:      cents(interest),
			Capital:       cents(capital),
			RemainingLoan: cents(Subs(t.amount, Muls(capital, float64(i)))),
		}
		if row.RemainingLoan <= settledBalance {
			row.RemainingLoan = 0
		}
		plan[i-1] = row
		paid = Adds(paid, total)
	}

	totalRepayment := cents(paid)
	return plan, LoanInfo{
		Monthly:        whole(plan[0].Total),
		TotalRepayment: whole(totalRepayment),
		TotalInterest:  whole(Subs(totalRepayment, t.amount)),
	}
}

func equalInstalment(t loanTerms) ([]LoanPlan, LoanInfo) {
	rate := t.monthlyRate()
	growth := Pows(Adds(1, rate), float64(t.months))
	payment := cents(Divs(Muls(t.amount, rate, growth), Subs(growth, 1)))
	plan := make([]LoanPlan, t.months)
	balance := t.amount
	repaid := 0.0

	for i := 1; i <= t.months; i++ {
		interest := cents(Muls(balance, rate))
		capital := Subs(payment, interest)
		repaid = Adds(repaid, capital)

		row := LoanPlan{
			Num:           i,
			Total:         payment,
			Interest:      interest,
			Capital:       cents(capital),
			RemainingLoan: cents(Subs(t.amount, repaid)),
		}
		if row.RemainingLoan <= settledBalance {
			row.RemainingLoan = 0
		}
		plan[i-1] = row
		balance = row.RemainingLoan
	}

	totalRepayment := Muls(payment, float64(t.months))
	return plan, LoanInfo{
		Monthly:        whole(payment),
		TotalRepayment: whole(totalRepayment),
		TotalInterest:  whole(Subs(totalRepayment, t.amount)),
	}
}
