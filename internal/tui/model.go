package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pinkmath/foundation/utils/mathx"
	"github.com/msto63/pinkmath/internal/calc"
	"github.com/msto63/pinkmath/internal/render"
)

// View represents different views in the TUI
type View int

const (
	ViewCalc View = iota
	ViewLoan
)

const viewCount = 2

// Line kinds in the calculator history
const (
	LineInput  = "input"
	LineResult = "result"
	LineSystem = "system"
	LineError  = "error"
)

// Line is one entry of the calculator transcript
type Line struct {
	Kind    string
	Content string
}

// Model is the main TUI model
type Model struct {
	// State
	view   View
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Calculator state
	session *calc.Session
	lines   []Line

	// Loan state
	loan       LoanDefaults
	loanOutput string
	loanErr    error
}

// NewModel creates a new TUI model around a calculator session
func NewModel(session *calc.Session, loan LoanDefaults) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	if loan.Method == "" {
		loan.Method = mathx.EqualInstalment
	}
	if loan.Months == 0 {
		loan.Months = 12
	}

	m := Model{
		view:    ViewCalc,
		input:   ti,
		session: session,
		loan:    loan,
		lines: []Line{{
			Kind:    LineSystem,
			Content: fmt.Sprintf("Sitzung %s im Modus %s", shortID(session.ID()), session.Mode()),
		}},
	}
	m.updatePlaceholder()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % viewCount
			m.input.Reset()
			m.updatePlaceholder()
			m.updateContent()
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.input.Value())
			if input != "" {
				m.input.Reset()
				switch m.view {
				case ViewCalc:
					m.evaluate(input)
					m.updatePlaceholder()
				case ViewLoan:
					m.computeLoan(input)
				}
				m.updateContent()
			}
			return m, nil

		case "ctrl+l":
			switch m.view {
			case ViewCalc:
				m.lines = nil
			case ViewLoan:
				m.loanOutput = ""
				m.loanErr = nil
			}
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-9))
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-9)
		}
		m.input.Width = max(10, msg.Width-8)
		m.updateContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) evaluate(input string) {
	m.lines = append(m.lines, Line{Kind: LineInput, Content: input})

	res, err := m.session.Eval(input)
	if err != nil {
		m.lines = append(m.lines, Line{Kind: LineError, Content: err.Error()})
		return
	}

	content := res.Text
	if res.Chain && m.session.Engine().IsInit {
		content += "  (Kette)"
	}
	m.lines = append(m.lines, Line{Kind: LineResult, Content: content})
}

func (m *Model) computeLoan(input string) {
	m.loanOutput = ""
	m.loanErr = nil

	method, opts, err := parseLoanLine(input, m.loan)
	if err != nil {
		m.loanErr = err
		return
	}

	res, err := mathx.Loan(method, opts)
	if err != nil {
		m.loanErr = err
		return
	}

	var buf bytes.Buffer
	r, err := render.New(&buf, render.FormatTable, false)
	if err == nil {
		err = r.Loan(res, opts)
	}
	if err != nil {
		m.loanErr = err
		return
	}
	m.loanOutput = buf.String()
}

func (m *Model) updatePlaceholder() {
	switch m.view {
	case ViewCalc:
		if m.session.Mode() == calc.ModePlain {
			m.input.Placeholder = "z.B. div 64 2, add 0.1 0.2, mode chain"
			return
		}
		m.input.Placeholder = "z.B. 64 div 2 add 2, base 10, done, mode plain"
	case ViewLoan:
		m.input.Placeholder = "Betrag Zins[d] [Monate] [Methode], z.B. 12000 12 12 debx"
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	tabs := []string{"Rechner", "Kredit"}
	var renderedTabs []string

	for i, tab := range tabs {
		if View(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("pink")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Model) renderFooter() string {
	help := "Tab: Wechseln • Ctrl+L: Leeren • Ctrl+C: Beenden"

	var mode string
	if m.view == ViewLoan {
		mode = PlainModeStyle.Render(fmt.Sprintf("Methode: %s, %d Monate", m.loan.Method, m.loan.Months))
	} else if m.session.Mode() == calc.ModeChain {
		mode = ChainModeStyle.Render("Modus: chain")
	} else {
		mode = PlainModeStyle.Render("Modus: plain")
	}

	gap := max(0, m.width-lipgloss.Width(help)-lipgloss.Width(mode)-4)
	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, help, strings.Repeat(" ", gap), mode),
	)
}

func (m *Model) updateContent() {
	var content strings.Builder

	switch m.view {
	case ViewCalc:
		for _, line := range m.lines {
			switch line.Kind {
			case LineInput:
				content.WriteString(InputLineStyle.Render("> "))
				content.WriteString(line.Content)
			case LineResult:
				content.WriteString(ResultLineStyle.Render("= " + line.Content))
			case LineSystem:
				content.WriteString(SystemLineStyle.Render("[System] " + line.Content))
			case LineError:
				content.WriteString(RenderError(line.Content))
			}
			content.WriteString("\n")
		}

	case ViewLoan:
		content.WriteString(SubtitleStyle.Render("Tilgungsplan"))
		content.WriteString("\n\n")
		switch {
		case m.loanErr != nil:
			content.WriteString(RenderError(m.loanErr.Error()))
		case m.loanOutput != "":
			content.WriteString(m.loanOutput)
		default:
			content.WriteString("Methoden: ")
			names := make([]string, 0, len(mathx.LoanMethods()))
			for _, method := range mathx.LoanMethods() {
				names = append(names, fmt.Sprintf("%s (%s)", method, method.Name()))
			}
			content.WriteString(strings.Join(names, ", "))
			content.WriteString("\n")
			content.WriteString(RenderHelp("Ein Zins mit Suffix d ist ein Tageszins."))
		}
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Lines returns the calculator transcript
func (m Model) Lines() []Line {
	return m.lines
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
