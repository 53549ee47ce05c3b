package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/pjatext/internal/constants"
)

// Styles contains the lipgloss styles derived from a theme.
type Styles struct {
	Success   lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles builds styles for t on renderer r.
func NewStyles(t *Theme, r *lipgloss.Renderer) Styles {
	return Styles{
		Success:   r.NewStyle().Foreground(t.Success).Bold(t.Bold),
		Error:     r.NewStyle().Foreground(t.Error).Bold(t.Bold),
		Separator: r.NewStyle().Foreground(t.Muted),
	}
}

// Painter colours the labels of a rendered report.
type Painter struct {
	styles Styles
}

// NewPainter creates a painter for theme t. The renderer decides the color
// profile, so a renderer bound to a non-terminal writer paints nothing.
func NewPainter(t *Theme, r *lipgloss.Renderer) *Painter {
	return &Painter{styles: NewStyles(t, r)}
}

// Paint returns report with its line labels styled. Lines without a known
// label are left untouched.
func (p *Painter) Paint(report string) string {
	if report == "" {
		return report
	}

	lines := strings.SplitAfter(report, "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(p.paintLine(line))
	}
	return b.String()
}

func (p *Painter) paintLine(line string) string {
	const sep = ":"

	switch {
	case strings.HasPrefix(line, constants.LabelSuccess+sep):
		rest := strings.TrimPrefix(line, constants.LabelSuccess+sep)
		return p.styles.Success.Render(constants.LabelSuccess) + p.styles.Separator.Render(sep) + rest
	case strings.HasPrefix(line, constants.LabelError+sep):
		rest := strings.TrimPrefix(line, constants.LabelError+sep)
		return p.styles.Error.Render(constants.LabelError) + p.styles.Separator.Render(sep) + rest
	default:
		return line
	}
}
