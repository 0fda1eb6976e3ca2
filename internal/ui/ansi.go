package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"
)

// detected is the profile lipgloss picked for this terminal at startup.
var detected = lipgloss.ColorProfile()

// SetColorForcing overrides terminal detection. disable wins over force;
// neither restores the detected profile.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(detected)
	}
}

func Fok(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(symCheck+" "+msg))
}

func Ffail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(symCross+" "+msg))
}
