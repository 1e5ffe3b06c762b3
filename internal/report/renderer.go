package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/modu-ai/plancheck/internal/defs"
)

// Format selects the renderer output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

// Renderer writes reports to an output stream.
type Renderer struct {
	w       io.Writer
	format  Format
	noColor bool

	errorStyle lipgloss.Style
	infoStyle  lipgloss.Style
	okStyle    lipgloss.Style
	hintStyle  lipgloss.Style
}

// NewRenderer creates a Renderer. When noColor is true text output carries
// no ANSI styling.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	r := &Renderer{w: w, format: format, noColor: noColor}
	if noColor {
		return r
	}

	r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}).Bold(true)
	r.infoStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"})
	r.okStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	r.hintStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	return r
}

// Render writes rep in the configured format.
func (r *Renderer) Render(rep *Report) error {
	if rep == nil {
		return nil
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	var sb strings.Builder
	for _, f := range rep.Findings {
		sb.WriteString(r.paint(r.styleFor(f.Kind), f.Summary))
		sb.WriteString("\n")
		if f.Hint != "" {
			sb.WriteString("  ")
			sb.WriteString(r.paint(r.hintStyle, f.Hint))
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.w, sb.String())
	return err
}

// paint applies style unless color is disabled. Plain output is written
// verbatim so it stays byte-stable for scripts.
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if r.noColor {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) styleFor(k Kind) lipgloss.Style {
	switch {
	case k.Failing():
		return r.errorStyle
	case k == KindAllClear:
		return r.okStyle
	default:
		return r.infoStyle
	}
}

// ColorDisabled reports whether output to f should be plain: f is not a
// terminal, or $NO_COLOR is set.
func ColorDisabled(f *os.File) bool {
	if _, set := os.LookupEnv(defs.EnvNoColor); set {
		return true
	}
	if f == nil {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
