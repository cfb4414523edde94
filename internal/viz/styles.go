package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles derived from a theme.
type Styles struct {
	Header      lipgloss.Style
	Winner      lipgloss.Style
	Player      [2]lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	Subtle      lipgloss.Style
	Warning     lipgloss.Style
	Panel       lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Winner: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Player: [2]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(t.PlayerA),
			lipgloss.NewStyle().Bold(true).Foreground(t.PlayerB),
		},
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted),
		MetricValue: lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Subtle:      lipgloss.NewStyle().Foreground(t.Muted),
		Warning:     lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// Sparkline renders one block character per value scaled against max.
func Sparkline(values []float64, max float64) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	if max <= 0 {
		max = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
