package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette and borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                          string
	Title, Muted, Accent, Success lipgloss.Style
	Error                         lipgloss.Style
	BorderColor, FocusColor       lipgloss.TerminalColor
	Border                        lipgloss.Border
}

var current = classic()

// SetTheme switches the active theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			BorderColor: lipgloss.Color("13"),
			FocusColor:  lipgloss.Color("14"),
			Border:      lipgloss.RoundedBorder(),
		}
	case "mono":
		current = Theme{
			Name:        "mono",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle(),
			Accent:      lipgloss.NewStyle().Underline(true),
			Success:     lipgloss.NewStyle(),
			Error:       lipgloss.NewStyle().Bold(true),
			BorderColor: lipgloss.NoColor{},
			FocusColor:  lipgloss.NoColor{},
			Border: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		BorderColor: lipgloss.Color("8"),
		FocusColor:  lipgloss.Color("12"),
		Border:      lipgloss.RoundedBorder(),
	}
}

// Expose what renderers need
func Current() Theme { return current }
