package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/runefall/internal/rain"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(18)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

// Swatch renders a short falling-glyph sample in a stream's colors: the
// head first, then the tail fading out.
func Swatch(base, head rain.RGB, fade int) string {
	var b strings.Builder
	b.WriteString(colored("ﾊ", head))
	for l := fade; l > 0; l-- {
		b.WriteString(colored("ﾐ", rain.Fade(base, l, fade)))
	}
	return b.String()
}

func colored(s string, c rain.RGB) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(s)
}

// Metric renders one "label value" line.
func Metric(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value)
}

func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
