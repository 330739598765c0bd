// Package output renders interpreter diagnostics and REPL tables for the
// leapbasic CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/leapstack-labs/leapbasic/internal/cli/config"
)

// Styles holds the lipgloss styles used for diagnostics.
type Styles struct {
	Label  lipgloss.Style
	Source lipgloss.Style
	Caret  lipgloss.Style
	Muted  lipgloss.Style
}

// newRenderer creates a lipgloss renderer for w honouring the color mode.
// In auto mode the profile is detected from w.
func newRenderer(w io.Writer, color string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// ResolveColor turns the auto color mode into always or never depending on
// whether w is a terminal. Other modes are returned unchanged.
func ResolveColor(mode string, w io.Writer) string {
	if mode != config.ColorAuto {
		return mode
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.ColorAlways
	}
	return config.ColorNever
}

// NewStyles builds the diagnostic styles on r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Source: r.NewStyle().Foreground(lipgloss.Color("252")),
		Caret:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
