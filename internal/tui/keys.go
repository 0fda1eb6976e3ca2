package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Decrement key.Binding
	Increment key.Binding
	Next      key.Binding
	Prev      key.Binding
	Press     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Decrement: key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-/←", "decrement")),
		Increment: key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+/→", "increment")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next button")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev button")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrement, k.Increment},
		{k.Next, k.Prev, k.Press},
		{k.Help, k.Quit},
	}
}
