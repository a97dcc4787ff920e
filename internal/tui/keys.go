package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter", " ")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
