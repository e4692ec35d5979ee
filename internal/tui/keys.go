package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
}

// Printable keys are not bound while a text input has focus; "q" is a valid
// passphrase character.
var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y", "Y")),
	no:      key.NewBinding(key.WithKeys("n", "N")),
}
