package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
	"github.com/msto63/pinkmath/internal/calc"
)

func newTestModel(chain bool) Model {
	m := NewModel(calc.NewSession(calc.Options{Chain: chain}), LoanDefaults{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel(calc.NewSession(calc.Options{}), LoanDefaults{})

	if m.view != ViewCalc {
		t.Errorf("view = %v, want ViewCalc", m.view)
	}
	if m.loan.Method != mathx.EqualInstalment || m.loan.Months != 12 {
		t.Errorf("loan defaults = %+v", m.loan)
	}
	if m.View() != "Lade..." {
		t.Errorf("View() before sizing = %q", m.View())
	}
	if len(m.Lines()) != 1 || m.Lines()[0].Kind != LineSystem {
		t.Errorf("expected a single greeting line, got %+v", m.Lines())
	}
}

func TestModel_Calculate(t *testing.T) {
	m := newTestModel(true)
	m = submit(t, m, "64 div 2 add 2")

	lines := m.Lines()
	last := lines[len(lines)-1]
	if last.Kind != LineResult || !strings.HasPrefix(last.Content, "34") {
		t.Errorf("last line = %+v, want result 34", last)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}

	m = submit(t, m, "done")
	last = m.Lines()[len(m.Lines())-1]
	if last.Content != "34" {
		t.Errorf("done line = %+v, want 34", last)
	}

	if !strings.Contains(m.View(), "34") {
		t.Error("View() should show the result")
	}
}

func TestModel_CalculateError(t *testing.T) {
	m := newTestModel(false)
	m = submit(t, m, "frob 1")

	last := m.Lines()[len(m.Lines())-1]
	if last.Kind != LineError {
		t.Errorf("last line = %+v, want error", last)
	}
}

func TestModel_EmptyInputIgnored(t *testing.T) {
	m := newTestModel(false)
	before := len(m.Lines())
	m = submit(t, m, "   ")

	if len(m.Lines()) != before {
		t.Errorf("blank input should not add lines, got %+v", m.Lines())
	}
}

func TestModel_ClearAndTabs(t *testing.T) {
	m := newTestModel(false)
	m = submit(t, m, "add 1 2")

	m = press(m, tea.KeyCtrlL)
	if len(m.Lines()) != 0 {
		t.Errorf("ctrl+l should clear the transcript, got %+v", m.Lines())
	}

	m = press(m, tea.KeyTab)
	if m.view != ViewLoan {
		t.Errorf("view = %v, want ViewLoan", m.view)
	}
	m = press(m, tea.KeyTab)
	if m.view != ViewCalc {
		t.Errorf("view = %v, want ViewCalc", m.view)
	}
}

func TestModel_Loan(t *testing.T) {
	m := newTestModel(false)
	m = press(m, tea.KeyTab)
	m = submit(t, m, "12000 12 12 debx")

	if m.loanErr != nil {
		t.Fatalf("loan error = %v", m.loanErr)
	}
	for _, want := range []string{"1066.19", "11053.81", "Restschuld"} {
		if !strings.Contains(m.loanOutput, want) {
			t.Errorf("loan output missing %q:\n%s", want, m.loanOutput)
		}
	}

	m = submit(t, m, "12000 x")
	if !mdwerror.HasCode(m.loanErr, mdwerror.CodeInvalidNumber) {
		t.Errorf("loanErr = %v, want invalid number", m.loanErr)
	}
	if m.loanOutput != "" {
		t.Error("a failed request should clear the previous schedule")
	}

	m = submit(t, m, "12000 12 9999999999 debx")
	if !mdwerror.HasCode(m.loanErr, mdwerror.CodeValueOutOfRange) {
		t.Errorf("loanErr = %v, want out of range", m.loanErr)
	}
}

func TestModel_PlainModeSeed(t *testing.T) {
	m := newTestModel(false)
	if !strings.Contains(m.input.Placeholder, "mode chain") {
		t.Errorf("plain placeholder = %q", m.input.Placeholder)
	}

	m = submit(t, m, "64 div 2")
	lines := m.Lines()
	if last := lines[len(lines)-1]; last.Kind != LineError {
		t.Errorf("last line = %+v, want an error for a start value in plain mode", last)
	}

	m = submit(t, m, "mode chain")
	if !strings.Contains(m.input.Placeholder, "mode plain") {
		t.Errorf("chain placeholder = %q", m.input.Placeholder)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestParseLoanLine(t *testing.T) {
	defaults := LoanDefaults{Method: mathx.EqualInstalment, Months: 12}

	tests := []struct {
		name   string
		line   string
		method mathx.LoanMethod
		opts   mathx.LoanOptions
	}{
		{"defaults", "12000 12", mathx.EqualInstalment, mathx.LoanOptions{Amount: 12000, YearRate: 12, Months: 12}},
		{"months and method", "5000 6 24 debj", mathx.EqualPrincipal, mathx.LoanOptions{Amount: 5000, YearRate: 6, Months: 24}},
		{"method first", "5000 6 xxhb 3", mathx.InterestFirst, mathx.LoanOptions{Amount: 5000, YearRate: 6, Months: 3}},
		{"day rate", "10000 0.05d", mathx.EqualInstalment, mathx.LoanOptions{Amount: 10000, DayRate: 0.05, Months: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, opts, err := parseLoanLine(tt.line, defaults)
			if err != nil {
				t.Fatalf("parseLoanLine() error = %v", err)
			}
			if method != tt.method {
				t.Errorf("method = %v, want %v", method, tt.method)
			}
			if opts != tt.opts {
				t.Errorf("opts = %+v, want %+v", opts, tt.opts)
			}
		})
	}

	errTests := []struct {
		line string
		code mdwerror.Code
	}{
		{"12000", mdwerror.CodeInvalidInput},
		{"1 2 3 debx 5", mdwerror.CodeInvalidInput},
		{"x 12", mdwerror.CodeInvalidNumber},
		{"12000 12 12 balloon", mdwerror.CodeInvalidOperation},
	}
	for _, tt := range errTests {
		t.Run(tt.line, func(t *testing.T) {
			_, _, err := parseLoanLine(tt.line, defaults)
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}
