package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/counter/internal/ui"
	"github.com/idilsaglam/counter/internal/widget"
)

// zone is the screen rectangle a clickable element occupies, inclusive.
type zone struct {
	hook           string
	x0, y0, x1, y1 int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x <= z.x1 && y >= z.y0 && y <= z.y1
}

// layout draws the element tree inside a panel and reports where each
// button landed so mouse presses can be mapped back to handlers.
func layout(root *widget.Node, focus string) (string, []zone) {
	th := ui.Current()

	var (
		blocks  []string
		buttons []string
		zones   []zone
		y       int
	)
	push := func(s string) {
		blocks = append(blocks, s)
		y += lipgloss.Height(s)
	}
	flushButtons := func() {
		if len(buttons) == 0 {
			return
		}
		push(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
		buttons = nil
	}

	x := 0
	for _, n := range root.Children {
		switch n.Tag {
		case "button":
			if len(buttons) == 0 {
				x = 0
				if len(blocks) > 0 {
					push("")
				}
			} else {
				buttons = append(buttons, " ")
				x++
			}
			b := ui.Button(n.Text, n.Hook == focus)
			w, h := lipgloss.Width(b), lipgloss.Height(b)
			zones = append(zones, zone{
				hook: n.Hook,
				x0:   ui.PanelInsetX + x, y0: ui.PanelInsetY + y,
				x1: ui.PanelInsetX + x + w - 1, y1: ui.PanelInsetY + y + h - 1,
			})
			buttons = append(buttons, b)
			x += w
		case "h1":
			flushButtons()
			push(th.Title.Render(n.Text))
		case "p":
			flushButtons()
			push("")
			push(th.Error.Render(n.Text))
		default:
			flushButtons()
			push(n.Text)
		}
	}
	flushButtons()

	return ui.Panel(strings.Join(blocks, "\n")), zones
}

// Snapshot renders a widget the way the interactive program shows it,
// without focus or help.
func Snapshot(w *widget.Widget) string {
	s, _ := layout(w.Render(), "")
	return s
}
