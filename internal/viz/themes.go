package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Lane   lipgloss.Color
	Header lipgloss.Color
	Hit    lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Player lipgloss.Color
	Enemy  lipgloss.Color
}

// Available themes
var (
	ThemeArcade = Theme{
		Name:   "arcade",
		Lane:   lipgloss.Color("#00ffff"),
		Header: lipgloss.Color("#ff00ff"),
		Hit:    lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Player: lipgloss.Color("#00ff88"),
		Enemy:  lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Lane:   lipgloss.Color("#00ff00"), // Green phosphor
		Header: lipgloss.Color("#00cc00"),
		Hit:    lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Player: lipgloss.Color("#88ff88"),
		Enemy:  lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Lane:   lipgloss.Color("#ffffff"),
		Header: lipgloss.Color("#cccccc"),
		Hit:    lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Player: lipgloss.Color("#00ff00"),
		Enemy:  lipgloss.Color("#ffaa00"),
	}

	// Default theme
	CurrentTheme = ThemeArcade

	// All available themes
	Themes = []Theme{
		ThemeArcade,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeArcade
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
