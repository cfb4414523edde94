package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the console color scheme
type Theme struct {
	Name    string
	Title   lipgloss.Color
	PlayerA lipgloss.Color
	PlayerB lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Title:   lipgloss.Color("#ffffff"),
		PlayerA: lipgloss.Color("#ff4444"), // red
		PlayerB: lipgloss.Color("#4488ff"), // blue
		Accent:  lipgloss.Color("#00cc66"),
		Muted:   lipgloss.Color("#888899"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Title:   lipgloss.Color("#e0f0ff"),
		PlayerA: lipgloss.Color("#ffd700"),
		PlayerB: lipgloss.Color("#00a8cc"),
		Accent:  lipgloss.Color("#00ff88"),
		Muted:   lipgloss.Color("#4488aa"),
		Warning: lipgloss.Color("#ffcc00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		PlayerA: lipgloss.Color("#ffffff"),
		PlayerB: lipgloss.Color("#cccccc"),
		Accent:  lipgloss.Color("#0088ff"),
		Muted:   lipgloss.Color("#888888"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, classic if unknown
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
