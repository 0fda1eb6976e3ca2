package ui

import "github.com/charmbracelet/lipgloss"

// PanelInsetX and PanelInsetY locate the panel's content relative to its
// top-left corner: one border cell plus horizontal padding.
const (
	PanelInsetX = 2
	PanelInsetY = 1
)

// Panel draws a framed box using the current theme.
func Panel(inner string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, PanelInsetX-1).
		Render(inner)
}

// Button frames a label; focused buttons take the theme's focus color.
func Button(label string, focused bool) string {
	st := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	if focused {
		st = st.BorderForeground(current.FocusColor).Bold(true)
	}
	return st.Render(label)
}
