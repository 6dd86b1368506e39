package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#22D3EE") // cyan
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#60A5FA") // blue
)

const ruleWidth = 60

// Theme holds the styles bound to one output stream. Writers that are not
// terminals get plain text.
type Theme struct {
	box     lipgloss.Style
	section lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
	dim     lipgloss.Style
	bold    lipgloss.Style
}

// NewTheme creates a Theme rendering for w. color=false forces plain text
// even on a terminal.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Theme{
		box: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Foreground(accent).
			PaddingLeft(2).
			Width(ruleWidth),
		section: r.NewStyle().Foreground(accent),
		pass:    r.NewStyle().Foreground(success),
		fail:    r.NewStyle().Foreground(danger),
		warn:    r.NewStyle().Foreground(warning),
		info:    r.NewStyle().Foreground(info),
		dim:     r.NewStyle().Foreground(dim),
		bold:    r.NewStyle().Bold(true),
	}
}

// Banner renders title inside a double-bordered box.
func (t *Theme) Banner(title string) string {
	return t.box.Render(title)
}

// Rule renders a horizontal section rule.
func (t *Theme) Rule() string {
	return t.section.Render(strings.Repeat("═", ruleWidth))
}
