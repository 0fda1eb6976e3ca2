package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	for _, name := range []string{"neon", "NEON", "mono", "classic"} {
		SetTheme(name)
		assert.Equal(t, strings.ToLower(name), Current().Name)
	}

	SetTheme("does-not-exist")
	assert.Equal(t, "classic", Current().Name)
}

func TestPanelInsets(t *testing.T) {
	defer SetTheme("classic")
	SetTheme("mono")

	lines := strings.Split(Panel("abc"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "+-----+", lines[0])
	assert.Equal(t, "abc", lines[PanelInsetY][PanelInsetX:PanelInsetX+3])
}

func TestButtonSize(t *testing.T) {
	b := Button("Go", false)
	assert.Equal(t, 3, lipgloss.Height(b))
	assert.Equal(t, len("Go")+4, lipgloss.Width(b))
	assert.Equal(t, lipgloss.Width(b), lipgloss.Width(Button("Go", true)))
}

func TestStatusLines(t *testing.T) {
	var out bytes.Buffer
	Fok(&out, "done")
	Ffail(&out, "broken")
	assert.Contains(t, out.String(), "✔ done")
	assert.Contains(t, out.String(), "✖ broken")
}

func TestColorForcingRestoresDetectedProfile(t *testing.T) {
	defer SetColorForcing(false, false)

	SetColorForcing(false, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	SetColorForcing(true, false)
	assert.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())

	SetColorForcing(true, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	SetColorForcing(false, false)
	assert.Equal(t, detected, lipgloss.ColorProfile())
}
