package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Border  lipgloss.Color
	Title   lipgloss.Style
	Clock   lipgloss.Style
	Paused  lipgloss.Style
	Tab     lipgloss.Style
	TabOn   lipgloss.Style
	Focused lipgloss.Style
	Dim     lipgloss.Style
	Input   lipgloss.Style
	Ad      lipgloss.Style
	Alert   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Border:  lipgloss.Color("63"),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Clock:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		Tab:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		TabOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(40),
		Ad:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Alert:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	},
	"dracula": {
		Name:    "Dracula",
		Border:  lipgloss.Color("62"),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Clock:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Bold(true),
		Tab:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		TabOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(40),
		Ad:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Alert:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
	},
}

// ThemeOrder fixes the cycle order for the theme toggle key.
var ThemeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// NextTheme returns the theme name following the given one in cycle order.
func NextTheme(name string) string {
	for i, n := range ThemeOrder {
		if n == name {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
