// Package termstyle colors text output with lipgloss.
package termstyle

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/usecase/report"
)

type Styler struct {
	source lipgloss.Style
	number lipgloss.Style
	sep    lipgloss.Style
	match  lipgloss.Style
}

// New returns the styler for w under mode. With ColorAuto, color is only
// used when w is a terminal.
func New(w io.Writer, mode domain.ColorMode) report.Styler {
	switch mode {
	case domain.ColorNever:
		return report.Plain{}
	case domain.ColorAuto:
		if !IsTerminal(w) {
			return report.Plain{}
		}
	}

	r := lipgloss.NewRenderer(w)
	if mode == domain.ColorAlways {
		r.SetColorProfile(termenv.ANSI)
	}
	return newStyler(r)
}

func newStyler(r *lipgloss.Renderer) *Styler {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Styler{
		source: base.Foreground(lipgloss.Color("5")),
		number: base.Foreground(lipgloss.Color("2")),
		sep:    base.Foreground(lipgloss.Color("6")),
		match:  base.Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (s *Styler) Enabled() bool { return true }

func (s *Styler) Source(v string) string { return s.source.Render(v) }

func (s *Styler) LineNumber(n int) string { return s.number.Render(strconv.Itoa(n)) }

func (s *Styler) Separator(v string) string { return s.sep.Render(v) }

func (s *Styler) Match(v string) string { return s.match.Render(v) }
