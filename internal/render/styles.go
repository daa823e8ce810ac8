package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to the renderer of the output, so escape codes are only
// produced for terminals that support them
type styles struct {
	header  lipgloss.Style
	cell    lipgloss.Style
	index   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	summary lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{
			header:  plain.Bold(true),
			cell:    plain,
			index:   plain,
			label:   plain,
			value:   plain,
			summary: plain.MarginTop(1),
		}
	}

	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		cell: r.NewStyle(),
		index: r.NewStyle().
			Foreground(colorMuted),
		label: r.NewStyle().
			Foreground(colorMuted),
		value: r.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		summary: r.NewStyle().
			MarginTop(1),
	}
}
