// Package render prints calculator results and loan schedules as styled
// tables or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pinkmath/foundation/core/errors"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const columnGap = "  "

var loanHeaders = []string{"#", "Rate", "Zinsen", "Tilgung", "Restschuld"}

// Renderer writes results to one output
type Renderer struct {
	w      io.Writer
	format string
	styles styles
}

// New creates a renderer. Unknown formats are rejected.
func New(w io.Writer, format string, color bool) (*Renderer, error) {
	switch format {
	case FormatTable, FormatJSON:
	case "":
		format = FormatTable
	default:
		return nil, errors.InvalidInput(errors.ModuleCLI, "render", format, "table or json")
	}

	return &Renderer{
		w:      w,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(w), color),
	}, nil
}

// numberOutput is the JSON form of a single result
type numberOutput struct {
	Input  string   `json:"input,omitempty"`
	Result *float64 `json:"result"`
	Text   string   `json:"text"`
}

// Number prints a single result. Table output is the bare text so it can
// be piped.
func (r *Renderer) Number(input string, value float64, text string) error {
	if r.format == FormatJSON {
		return r.writeJSON(numberOutput{Input: input, Result: finite(value), Text: text})
	}
	_, err := fmt.Fprintln(r.w, text)
	return err
}

// loanOutput is the JSON form of a schedule
type loanOutput struct {
	Method  mathx.LoanMethod  `json:"method"`
	Name    string            `json:"name"`
	Options mathx.LoanOptions `json:"options"`
	Plan    []mathx.LoanPlan  `json:"plan"`
	Info    mathx.LoanInfo    `json:"info"`
}

// Loan prints a repayment schedule with its summary
func (r *Renderer) Loan(res *mathx.LoanResult, opts mathx.LoanOptions) error {
	if r.format == FormatJSON {
		return r.writeJSON(loanOutput{
			Method:  res.Method,
			Name:    res.Method.Name(),
			Options: opts,
			Plan:    res.Plan,
			Info:    res.Info,
		})
	}

	_, err := io.WriteString(r.w, r.loanTable(res)+"\n")
	return err
}

func (r *Renderer) loanTable(res *mathx.LoanResult) string {
	rows := make([][]string, 0, len(res.Plan))
	for _, p := range res.Plan {
		rows = append(rows, []string{
			strconv.Itoa(p.Num),
			mathx.ToFixed(p.Total, 2),
			mathx.ToFixed(p.Interest, 2),
			mathx.ToFixed(p.Capital, 2),
			mathx.ToFixed(p.RemainingLoan, 2),
		})
	}

	widths := make([]int, len(loanHeaders))
	for i, h := range loanHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(r.row(loanHeaders, widths, r.styles.header, r.styles.header))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(r.row(row, widths, r.styles.index, r.styles.cell))
	}

	b.WriteString("\n")
	b.WriteString(r.summary(res))
	return b.String()
}

func (r *Renderer) row(cells []string, widths []int, first, rest lipgloss.Style) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		style := rest
		if i == 0 {
			style = first
		}
		out[i] = style.Width(widths[i]).Align(lipgloss.Right).Render(c)
	}
	return strings.Join(out, columnGap)
}

func (r *Renderer) summary(res *mathx.LoanResult) string {
	parts := []string{
		r.styles.label.Render(res.Method.Name()),
		r.styles.label.Render("Monatsrate") + " " + r.styles.value.Render(mathx.FormatNumber(res.Info.Monthly)),
		r.styles.label.Render("Gesamt") + " " + r.styles.value.Render(mathx.FormatNumber(res.Info.TotalRepayment)),
		r.styles.label.Render("Zinsen") + " " + r.styles.value.Render(mathx.FormatNumber(res.Info.TotalInterest)),
	}
	return r.styles.summary.Render(strings.Join(parts, columnGap))
}

func (r *Renderer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// finite returns nil for values JSON cannot represent
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}
